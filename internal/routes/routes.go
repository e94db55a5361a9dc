// Package routes is the pure half of the access-control router: the
// destination table (which paths exist and which roles may enter), the
// role-to-canonical-home mapping used on denied access, and the fixed
// per-role navigation menu. HTTP middleware consults these tables; nothing
// here touches the network.
package routes

import "github.com/jobra/portal_backend/internal/catalog"

const (
	LoginPath    = "/login"
	RegisterPath = "/register"
)

// Destination is a navigable location with its allowed-role set. An empty
// AllowedRoles set means the destination is open without authentication.
type Destination struct {
	Path         string
	AllowedRoles []catalog.Role
}

// Table is the full destination surface. Order matters only for display
// (system routes command, documentation); matching is by exact prefix group.
var Table = []Destination{
	{Path: LoginPath},
	{Path: RegisterPath},

	{Path: "/patient/dashboard", AllowedRoles: []catalog.Role{catalog.RolePatient}},
	{Path: "/patient/reports", AllowedRoles: []catalog.Role{catalog.RolePatient}},
	{Path: "/patient/appointments", AllowedRoles: []catalog.Role{catalog.RolePatient}},
	{Path: "/patient/book-appointment", AllowedRoles: []catalog.Role{catalog.RolePatient}},
	{Path: "/patient/doctors", AllowedRoles: []catalog.Role{catalog.RolePatient}},
	{Path: "/patient/reviews", AllowedRoles: []catalog.Role{catalog.RolePatient}},

	{Path: "/doctor/dashboard", AllowedRoles: []catalog.Role{catalog.RoleDoctor}},
	{Path: "/doctor/patients", AllowedRoles: []catalog.Role{catalog.RoleDoctor}},
	{Path: "/doctor/reports", AllowedRoles: []catalog.Role{catalog.RoleDoctor}},
	{Path: "/doctor/appointments", AllowedRoles: []catalog.Role{catalog.RoleDoctor}},

	{Path: "/admin/dashboard", AllowedRoles: []catalog.Role{catalog.RoleAdmin}},
	{Path: "/admin/users", AllowedRoles: []catalog.Role{catalog.RoleAdmin}},
	{Path: "/admin/reviews", AllowedRoles: []catalog.Role{catalog.RoleAdmin}},
	{Path: "/admin/statistics", AllowedRoles: []catalog.Role{catalog.RoleAdmin}},
}

// homes maps each role to its canonical home destination, the redirect target
// when an authenticated principal asks for a destination outside their role.
var homes = map[catalog.Role]string{
	catalog.RoleAdmin:   "/admin/dashboard",
	catalog.RoleDoctor:  "/doctor/dashboard",
	catalog.RolePatient: "/patient/dashboard",
}

// HomeFor returns the canonical home for a role. Unknown roles fall back to
// the login destination.
func HomeFor(role catalog.Role) string {
	if home, ok := homes[role]; ok {
		return home
	}
	return LoginPath
}

// NavItem is one entry of the role-specific navigation menu.
type NavItem struct {
	Path  string `json:"path"`
	Label string `json:"label"`
	Icon  string `json:"icon"`
}

var navMenus = map[catalog.Role][]NavItem{
	catalog.RoleAdmin: {
		{Path: "/admin/dashboard", Label: "Dashboard", Icon: "home"},
		{Path: "/admin/users", Label: "User Management", Icon: "users"},
		{Path: "/admin/reviews", Label: "Review Management", Icon: "star"},
		{Path: "/admin/statistics", Label: "Statistics", Icon: "chart"},
	},
	catalog.RoleDoctor: {
		{Path: "/doctor/dashboard", Label: "Dashboard", Icon: "home"},
		{Path: "/doctor/patients", Label: "My Patients", Icon: "users"},
		{Path: "/doctor/reports", Label: "Reports", Icon: "clipboard"},
		{Path: "/doctor/appointments", Label: "Appointments", Icon: "calendar"},
	},
	catalog.RolePatient: {
		{Path: "/patient/dashboard", Label: "Dashboard", Icon: "home"},
		{Path: "/patient/reports", Label: "My Reports", Icon: "clipboard"},
		{Path: "/patient/appointments", Label: "Appointments", Icon: "calendar"},
		{Path: "/patient/book-appointment", Label: "Book Appointment", Icon: "plus"},
		{Path: "/patient/doctors", Label: "Doctors", Icon: "stethoscope"},
		{Path: "/patient/reviews", Label: "Reviews", Icon: "star"},
	},
}

// NavFor returns the fixed, ordered navigation menu for a role. Unknown roles
// (including the empty role of an unauthenticated request) get an empty menu.
func NavFor(role catalog.Role) []NavItem {
	items, ok := navMenus[role]
	if !ok {
		return []NavItem{}
	}
	out := make([]NavItem, len(items))
	copy(out, items)
	return out
}
