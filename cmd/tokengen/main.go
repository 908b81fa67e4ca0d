// Command tokengen seeds a user record and prints a signed identity
// token. Token issuance lives here, outside the service: the alert
// service itself only ever verifies.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/logs"

	"transit-ops/auth"
	"transit-ops/domain"
	"transit-ops/repositories"
)

func main() {
	dbPath := flag.String("db", "./data/badger", "Path to the badger database")
	email := flag.String("email", "", "User email (reused if the account exists)")
	name := flag.String("name", "", "Display name for a new account")
	role := flag.String("role", string(domain.RoleEndUser), "Role for a new account")
	password := flag.String("password", "", "Password for a new account")
	secret := flag.String("secret", "", "JWT signing secret (must match the service)")
	duration := flag.Duration("duration", 24*time.Hour, "Token validity")
	flag.Parse()

	if *email == "" || *secret == "" {
		log.Fatal("Both -email and -secret are required")
	}

	db, err := badger.Open(badger.DefaultOptions(*dbPath).WithLogger(nil))
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	logger := logs.GetLoggerFromString("INFO")
	users := repositories.NewUserRepository(db, logger)
	ctx := context.Background()

	user, err := users.GetUserByEmail(ctx, *email)
	if err != nil {
		if *password == "" || *name == "" {
			log.Fatal("Account not found; -name and -password are required to create it")
		}
		id, err := users.CreateUser(domain.User{
			DisplayName: *name,
			Email:       *email,
			Role:        domain.Role(*role),
		}, *password)
		if err != nil {
			log.Fatal("Error while creating user: ", err)
		}
		user, err = users.GetUserByID(ctx, id)
		if err != nil {
			log.Fatal("Error while reloading user: ", err)
		}
		fmt.Printf("Created user %s (%s)\n", user.ID, user.Role)
	}

	token, err := auth.GenerateToken(user.ID, string(user.Role), []byte(*secret), *duration)
	if err != nil {
		log.Fatal("Error while signing token: ", err)
	}
	fmt.Println(token)
}
