package entities

import "time"

// User is a registered account.
//
// daogen:entity table=users
type User struct {
	ID        int       `db:"id,type=INT,size=11,pk"`
	Name      string    `db:"name,size=50,unique"`
	Age       int       `db:"age,size=11"`
	CreatedAt time.Time `db:"created_at"`
	Password  string    `db:"-"`
	cache     string
}

// Post is a user post.
//
//daogen:entity
type Post struct {
	ID     int64  `db:",pk"`
	Title  string `db:",size=200"`
	UserID int    `db:",size=11,fk=users.id,ondelete=CASCADE"`
}

// Session is not an entity.
type Session struct {
	Token string `db:"token,pk"`
}
