// Package models defines the core data structures for users, people,
// planets and favorites.
package models

// User represents a blog user and the favorites they own.
type User struct {
	// ID is the unique identifier for the user.
	ID int64 `json:"id"`
	// Username is the unique login name of the user.
	Username string `json:"username"`
	// Email is the unique email address of the user.
	Email string `json:"email"`
	// Password holds the bcrypt hash of the user's password. It is never serialized.
	Password string `json:"-"`
	// IsActive reports whether the account is active.
	IsActive bool `json:"is_active"`
	// Favorites lists the favorites owned by the user.
	Favorites []Favorite `json:"favorites"`
}

// Person is a Star Wars character.
type Person struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	LastName string `json:"lastname"`
	// Side is the faction the character belongs to.
	Side string `json:"side"`
}

// Planet is a Star Wars planet.
type Planet struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Terrain    string `json:"terrain"`
	Population int64  `json:"population"`
	Galaxy     string `json:"galaxy"`
}

// Favorite links a user to a planet and/or a person.
type Favorite struct {
	// ID is the unique identifier for the favorite.
	ID int64 `json:"id"`
	// UserID references the owning user.
	UserID int64 `json:"user_id"`
	// PlanetID references the favorited planet, if any.
	PlanetID *int64 `json:"planet_id"`
	// PeopleID references the favorited person, if any.
	PeopleID *int64 `json:"people_id"`
}
