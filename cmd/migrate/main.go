package main

import (
	"github.com/cityserv/cityserv/db"
)

// Applies schema migrations and loads the demo seed data.
func main() {
	db.Migrate()
	db.Seed()
}
