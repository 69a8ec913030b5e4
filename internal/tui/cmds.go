package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/keelson/sitedesk/internal/client"
	"github.com/keelson/sitedesk/internal/domain/project"
)

// loginResultMsg carries the outcome of a sign-in attempt.
type loginResultMsg struct {
	result *client.LoginResult
	err    error
}

// registerResultMsg carries the outcome of a sign-up attempt.
type registerResultMsg struct {
	err error
}

// listLoadedMsg completes a collection fetch. items is a []T for the
// panel bound to endpoint.
type listLoadedMsg struct {
	endpoint string
	items    any
	err      error
}

// itemSavedMsg completes a create or update round trip. item is the row
// the server echoed back.
type itemSavedMsg struct {
	endpoint string
	created  bool
	item     any
	err      error
}

// itemDeletedMsg completes a delete round trip.
type itemDeletedMsg struct {
	endpoint string
	id       string
	err      error
}

func loginCmd(c *client.Client, email, password string) tea.Cmd {
	return func() tea.Msg {
		result, err := c.Login(context.Background(), email, password)
		return loginResultMsg{result: result, err: err}
	}
}

func registerCmd(c *client.Client, email, password, fullName string) tea.Cmd {
	return func() tea.Msg {
		return registerResultMsg{err: c.Register(context.Background(), email, password, fullName)}
	}
}

func loadListCmd[T any](c *client.Client, endpoint string) tea.Cmd {
	return func() tea.Msg {
		items, err := client.FetchList[T](context.Background(), c, endpoint)
		return listLoadedMsg{endpoint: endpoint, items: items, err: err}
	}
}

func createItemCmd[T any](c *client.Client, endpoint string, fields map[string]any) tea.Cmd {
	return func() tea.Msg {
		item, err := client.CreateItem[T](context.Background(), c, endpoint, fields)
		return itemSavedMsg{endpoint: endpoint, created: true, item: item, err: err}
	}
}

func updateItemCmd[T any](c *client.Client, endpoint, id string, fields map[string]any) tea.Cmd {
	return func() tea.Msg {
		item, err := client.UpdateItem[T](context.Background(), c, endpoint, id, fields)
		return itemSavedMsg{endpoint: endpoint, item: item, err: err}
	}
}

func deleteItemCmd(c *client.Client, endpoint, id string) tea.Cmd {
	return func() tea.Msg {
		return itemDeletedMsg{endpoint: endpoint, id: id, err: client.DeleteItem(context.Background(), c, endpoint, id)}
	}
}

func loadProjectsCmd(c *client.Client) tea.Cmd {
	return loadListCmd[project.Project](c, "projects")
}
