package tui

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatMoney(t *testing.T) {
	require.Equal(t, "$0.00", formatMoney(0))
	require.Equal(t, "$1,250,000.00", formatMoney(1_250_000))
	require.Equal(t, "$999.50", formatMoney(999.5))
	require.Equal(t, "-$250,000.00", formatMoney(-250_000))
}

func TestFormatMoneyCarriesRoundedCents(t *testing.T) {
	require.Equal(t, "$2.00", formatMoney(1.995))
	require.Equal(t, "$1,000.00", formatMoney(999.999))
	require.Equal(t, "-$2.00", formatMoney(-1.995))
}

func TestTruncateRuneSafe(t *testing.T) {
	require.Equal(t, "short", truncate("short", 10))
	require.Equal(t, "Gebäudesani…", truncate("Gebäudesanierung Süd", 12))
}

func TestFormatMillions(t *testing.T) {
	require.Equal(t, "$2.5M", formatMillions(2_500_000))
	require.Equal(t, "$0.0M", formatMillions(0))
	require.Equal(t, "$12.3M", formatMillions(12_345_678))
}

func TestProgressBarClamps(t *testing.T) {
	require.Equal(t, 10, len([]rune(progressBar(-5, 10))))
	require.Equal(t, 10, len([]rune(progressBar(150, 10))))
	full := progressBar(100, 4)
	require.Equal(t, "████", full)
	require.Equal(t, "░░░░", progressBar(0, 4))
}
