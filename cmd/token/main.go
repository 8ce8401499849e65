// Command token issues an access token for local development and API testing.
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/workaxis/hrms-backend-go/internal/config"
	"github.com/workaxis/hrms-backend-go/internal/pkg/clock"
	"github.com/workaxis/hrms-backend-go/internal/pkg/jwt"
)

func main() {
	userID := flag.String("user", "hr-admin", "user id recorded in audit columns")
	email := flag.String("email", "", "email claim")
	role := flag.String("role", "hr", "role claim")
	ttl := flag.Duration("ttl", 0, "token lifetime, defaults to JWT_ACCESS_EXPIRATION_TIME")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	expiration := cfg.JWT.AccessExpiration
	if *ttl > 0 {
		expiration = *ttl
	}

	svc := jwt.NewJWTService(cfg.JWT.Secret, expiration, clock.Real())
	token, expiresAt, err := svc.GenerateAccessToken(jwt.Claims{UserID: *userID, Email: *email, Role: *role})
	if err != nil {
		log.Fatal("Error generating token: ", err)
	}

	fmt.Println(token)
	log.Printf("expires at %s", time.Unix(expiresAt, 0).UTC().Format(time.RFC3339))
}
