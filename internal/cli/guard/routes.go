package guard

// Route is a navigable destination plus its access requirements. Requiring
// admin implies requiring authentication.
type Route struct {
	Name          string
	Path          string
	RequiresAuth  bool
	RequiresAdmin bool
}

// The route surface of the client. Commands resolve to one of these before
// touching the API.
var (
	Home       = Route{Name: "home", Path: "/"}
	Books      = Route{Name: "books", Path: "/books"}
	BookDetail = Route{Name: "bookDetail", Path: "/books/:id"}
	Search     = Route{Name: "search", Path: "/search"}
	Join       = Route{Name: "join", Path: "/join"}
	Login      = Route{Name: "login", Path: "/login"}

	Loans      = Route{Name: "loans", Path: "/loans", RequiresAuth: true}
	LoanDetail = Route{Name: "loanDetail", Path: "/loans/:id", RequiresAuth: true}
	LoanNew    = Route{Name: "loanNew", Path: "/loans/new", RequiresAuth: true}
	Reviews    = Route{Name: "reviews", Path: "/reviews", RequiresAuth: true}

	Admin           = Route{Name: "admin", Path: "/admin", RequiresAdmin: true}
	AdminBooks      = Route{Name: "adminBooks", Path: "/admin/books", RequiresAdmin: true}
	AdminAuthors    = Route{Name: "adminAuthors", Path: "/admin/authors", RequiresAdmin: true}
	AdminCategories = Route{Name: "adminCategories", Path: "/admin/categories", RequiresAdmin: true}
	AdminPublishers = Route{Name: "adminPublishers", Path: "/admin/publishers", RequiresAdmin: true}
	AdminLoans      = Route{Name: "adminLoans", Path: "/admin/loans", RequiresAdmin: true}
	AdminUsers      = Route{Name: "adminUsers", Path: "/admin/users", RequiresAdmin: true}
	AdminReports    = Route{Name: "adminReports", Path: "/admin/reports", RequiresAdmin: true}
)
