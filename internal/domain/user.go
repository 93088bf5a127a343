package domain

type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Hash     string `json:"-"`
}
