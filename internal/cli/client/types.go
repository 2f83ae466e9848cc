package client

// Page is the pagination envelope the server wraps every paginated listing
// in.
type Page[T any] struct {
	Content          []T   `json:"content"`
	TotalElements    int64 `json:"totalElements"`
	TotalPages       int   `json:"totalPages"`
	Size             int   `json:"size"`
	Number           int   `json:"number"`
	First            bool  `json:"first"`
	Last             bool  `json:"last"`
	NumberOfElements int   `json:"numberOfElements"`
	Empty            bool  `json:"empty"`
}

// User role values.
const (
	RoleAdmin  = "ADMIN"
	RoleMember = "MEMBER"
)

// User status values.
const (
	StatusActive   = "ACTIVE"
	StatusBanned   = "BANNED"
	StatusInactive = "INACTIVE"
)

// Loan status values.
const (
	LoanBorrowed = "BORROWED"
	LoanReturned = "RETURNED"
	LoanOverdue  = "OVERDUE"
)

type User struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	FullName  string `json:"fullName"`
	Status    string `json:"status"`
	Role      string `json:"role"`
	CreatedAt string `json:"createdAt"`
}

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"fullName"`
}

type UserUpdate struct {
	Email    *string `json:"email,omitempty"`
	FullName *string `json:"fullName,omitempty"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

// BookReference is the short form embedded in detail responses.
type BookReference struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
	ISBN  string `json:"isbn"`
}

type Author struct {
	ID       int64   `json:"id"`
	FullName string  `json:"fullName"`
	Bio      *string `json:"bio"`
}

type AuthorDetail struct {
	Author
	CreatedAt string          `json:"createdAt"`
	Books     []BookReference `json:"books"`
}

type AuthorRequest struct {
	FullName string  `json:"fullName"`
	Bio      *string `json:"bio,omitempty"`
}

type Category struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

type CategoryDetail struct {
	Category
	Books []BookReference `json:"books"`
}

type CategoryRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

type Publisher struct {
	ID      int64   `json:"id"`
	Name    string  `json:"name"`
	Website *string `json:"website"`
	Address *string `json:"address"`
}

type PublisherDetail struct {
	Publisher
	CreatedAt string          `json:"createdAt"`
	Books     []BookReference `json:"books"`
}

type PublisherRequest struct {
	Name    string  `json:"name"`
	Website *string `json:"website,omitempty"`
	Address *string `json:"address,omitempty"`
}

type Book struct {
	ID              int64      `json:"id"`
	Title           string     `json:"title"`
	ISBN            string     `json:"isbn"`
	PublicationYear int        `json:"publicationYear"`
	Description     *string    `json:"description"`
	CoverImageURL   *string    `json:"coverImageUrl"`
	FilePath        *string    `json:"filePath"`
	Publisher       Publisher  `json:"publisher"`
	Authors         []Author   `json:"authors"`
	Categories      []Category `json:"categories"`
}

type BookDetail struct {
	Book
	ReviewSummary *ReviewSummary `json:"reviewSummary,omitempty"`
}

type BookRequest struct {
	Title           string  `json:"title"`
	ISBN            string  `json:"isbn"`
	PublicationYear int     `json:"publicationYear"`
	Description     *string `json:"description,omitempty"`
	CoverImageURL   *string `json:"coverImageUrl,omitempty"`
	FilePath        *string `json:"filePath,omitempty"`
	PublisherID     int64   `json:"publisherId"`
	AuthorIDs       []int64 `json:"authorIds,omitempty"`
	CategoryIDs     []int64 `json:"categoryIds,omitempty"`
}

type BookUpdate struct {
	Title           *string `json:"title,omitempty"`
	ISBN            *string `json:"isbn,omitempty"`
	PublicationYear *int    `json:"publicationYear,omitempty"`
	Description     *string `json:"description,omitempty"`
	CoverImageURL   *string `json:"coverImageUrl,omitempty"`
	FilePath        *string `json:"filePath,omitempty"`
	PublisherID     *int64  `json:"publisherId,omitempty"`
	AuthorIDs       []int64 `json:"authorIds,omitempty"`
	CategoryIDs     []int64 `json:"categoryIds,omitempty"`
}

// BookSearchCriteria is the POST body of the criteria search.
type BookSearchCriteria struct {
	Title     *string `json:"title,omitempty"`
	ISBN      *string `json:"isbn,omitempty"`
	Author    *string `json:"author,omitempty"`
	Category  *string `json:"category,omitempty"`
	Publisher *string `json:"publisher,omitempty"`
	MinYear   *int    `json:"minYear,omitempty"`
	MaxYear   *int    `json:"maxYear,omitempty"`
}

type Loan struct {
	ID           int64   `json:"id"`
	UserID       int64   `json:"userId"`
	UserFullName string  `json:"userFullName"`
	BookID       int64   `json:"bookId"`
	BookTitle    string  `json:"bookTitle"`
	BorrowDate   string  `json:"borrowDate"`
	DueDate      string  `json:"dueDate"`
	ReturnDate   *string `json:"returnDate"`
	Status       string  `json:"status"`
}

type LoanDetail struct {
	ID         int64   `json:"id"`
	User       User    `json:"user"`
	Book       Book    `json:"book"`
	BorrowDate string  `json:"borrowDate"`
	DueDate    string  `json:"dueDate"`
	ReturnDate *string `json:"returnDate"`
	Status     string  `json:"status"`
}

type LoanRequest struct {
	UserID  int64  `json:"userId"`
	BookID  int64  `json:"bookId"`
	DueDate string `json:"dueDate"`
}

type LoanRenewalRequest struct {
	NewDueDate string `json:"newDueDate"`
}

type LoanStatistics struct {
	TotalBorrowed     int64  `json:"totalBorrowed"`
	TotalReturned     int64  `json:"totalReturned"`
	TotalOverdue      int64  `json:"totalOverdue"`
	MostBorrowedBooks []Book `json:"mostBorrowedBooks"`
}

type ReviewSummary struct {
	AverageRating float64 `json:"averageRating"`
	TotalReviews  int64   `json:"totalReviews"`
}

type Review struct {
	ID           int64   `json:"id"`
	UserID       int64   `json:"userId"`
	UserFullName string  `json:"userFullName"`
	BookID       int64   `json:"bookId"`
	BookTitle    string  `json:"bookTitle"`
	Rating       int     `json:"rating"`
	Comment      *string `json:"comment"`
	CreatedAt    string  `json:"createdAt"`
}

type ReviewRequest struct {
	UserID  int64   `json:"userId"`
	BookID  int64   `json:"bookId"`
	Rating  int     `json:"rating"`
	Comment *string `json:"comment,omitempty"`
}

type ReviewUpdate struct {
	Rating  int     `json:"rating"`
	Comment *string `json:"comment,omitempty"`
}

type AverageRating struct {
	BookID        int64   `json:"bookId"`
	BookTitle     string  `json:"bookTitle"`
	AverageRating float64 `json:"averageRating"`
	TotalReviews  int64   `json:"totalReviews"`
}

type DashboardStatistics struct {
	TotalBooks        int64    `json:"totalBooks"`
	TotalUsers        int64    `json:"totalUsers"`
	ActiveLoans       int64    `json:"activeLoans"`
	OverdueLoans      int64    `json:"overdueLoans"`
	MostBorrowedBooks []Book   `json:"mostBorrowedBooks"`
	TopAuthors        []Author `json:"topAuthors"`
}

type LoanReport struct {
	StartDate     string           `json:"startDate"`
	EndDate       string           `json:"endDate"`
	BorrowsByDate map[string]int64 `json:"borrowsByDate"`
	ReturnsByDate map[string]int64 `json:"returnsByDate"`
	TotalBorrows  int64            `json:"totalBorrows"`
	TotalReturns  int64            `json:"totalReturns"`
}

type ReviewReport struct {
	BookID             int64           `json:"bookId"`
	BookTitle          string          `json:"bookTitle"`
	RatingDistribution map[int]int64   `json:"ratingDistribution"`
	AverageRating      float64         `json:"averageRating"`
	TotalReviews       int64           `json:"totalReviews"`
	TopRatedBooks      []BookReference `json:"topRatedBooks"`
}
