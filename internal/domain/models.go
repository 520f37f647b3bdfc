package domain

// Roles según el backend: 1 = administrador, 2 = usuario regular.
const (
	RoleAdmin = 1
	RoleUser  = 2
)

// DateLayout es el formato de fecha que usa el backend en todos los endpoints.
const DateLayout = "2006-01-02"

// User representa la identidad autenticada que devuelve el backend.
// Token es la credencial bearer opaca; nunca se interpreta del lado cliente.
type User struct {
	ID        int    `json:"user_id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"user_email"`
	RoleID    int    `json:"role_id"`
	Token     string `json:"token,omitempty"`
}

// IsAdmin se recalcula siempre desde el rol; nunca se persiste aparte.
func (u User) IsAdmin() bool {
	return u.RoleID == RoleAdmin
}

func (u User) DisplayName() string {
	switch {
	case u.FirstName != "" && u.LastName != "":
		return u.FirstName + " " + u.LastName
	case u.FirstName != "":
		return u.FirstName
	default:
		return u.Email
	}
}

// Registration agrupa los campos que exige POST /users.
type Registration struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"user_email"`
	Password  string `json:"user_password"`
}

// UserPatch agrupa campos opcionales para PUT /users/:id; solo los campos
// presentes viajan en el body.
type UserPatch struct {
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
	Email     *string `json:"user_email,omitempty"`
	Password  *string `json:"user_password,omitempty"`
	RoleID    *int    `json:"role_id,omitempty"`
}

// Vacation es una oferta reservable. El listado devuelve country_name (join)
// y el detalle devuelve country_id; ambos campos son opcionales por eso.
type Vacation struct {
	ID          int     `json:"vacation_id"`
	CountryID   int     `json:"country_id,omitempty"`
	CountryName string  `json:"country_name,omitempty"`
	Description string  `json:"vacation_description"`
	StartDate   string  `json:"vacation_start"`
	EndDate     string  `json:"vacation_ends"`
	Price       float64 `json:"vacation_price"`
	FileName    string  `json:"vacation_file_name"`
	Currency    string  `json:"vacation_currency"`
	Followers   int     `json:"vacation_followers_count"`
}

type Country struct {
	ID   int    `json:"country_id"`
	Name string `json:"country_name"`
}

// Like es la entidad de unión usuario/vacación; a lo sumo una por par.
type Like struct {
	UserID     int `json:"user_id"`
	VacationID int `json:"vacation_id"`
}

// Ban es una restricción administrativa acotada en el tiempo.
type Ban struct {
	ID        int    `json:"ban_id"`
	UserID    int    `json:"user_id"`
	Reason    string `json:"reason"`
	UntilAt   string `json:"until_at"`
	CreatedAt string `json:"created_at"`
}

// BanStatus es la respuesta de GET /bans/:userId.
type BanStatus struct {
	Banned bool `json:"banned"`
	Info   *Ban `json:"info,omitempty"`
}
