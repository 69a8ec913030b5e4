package tui

// Section is a navigation destination in the sidebar.
type Section int

const (
	SectionDashboard Section = iota
	SectionProjects
	SectionDocuments
	SectionBids
	SectionChangeOrders
	SectionInspections
)

// Sections lists every destination in sidebar order.
var Sections = []Section{
	SectionDashboard,
	SectionProjects,
	SectionDocuments,
	SectionBids,
	SectionChangeOrders,
	SectionInspections,
}

// Title is the sidebar label.
func (s Section) Title() string {
	switch s {
	case SectionDashboard:
		return "Dashboard"
	case SectionProjects:
		return "Projects"
	case SectionDocuments:
		return "Documents"
	case SectionBids:
		return "Bids"
	case SectionChangeOrders:
		return "Change Orders"
	case SectionInspections:
		return "Inspections"
	}
	return "Unknown"
}

// Endpoint is the API collection the section renders, or "" for sections
// that ride on the project collection.
func (s Section) Endpoint() string {
	switch s {
	case SectionDocuments:
		return "documents"
	case SectionBids:
		return "bids"
	case SectionChangeOrders:
		return "change_orders"
	case SectionInspections:
		return "inspections"
	}
	return ""
}
