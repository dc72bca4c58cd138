package user

// Location is a point on the Euclidean plane
type Location struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// User carries the identity and position shared by riders and drivers
type User struct {
	ID       string   `json:"id"`
	Location Location `json:"location"`
}

// SetLocation moves the user to (x, y)
func (u *User) SetLocation(x, y float64) {
	u.Location = Location{X: x, Y: y}
}

// At reports whether the user stands exactly at (x, y)
func (u *User) At(x, y float64) bool {
	return u.Location.X == x && u.Location.Y == y
}
