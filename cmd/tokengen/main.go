// Command tokengen mints HS256 tokens for local whiteboard clients.
//
//	JWT_SECRET=... tokengen -sub u1 -email alice@example.com -ttl 24h
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/JvSdv/whiteboardSoketServer/pkg/auth"
)

func main() {
	_ = godotenv.Load()

	sub := flag.String("sub", "", "subject (user id) claim")
	email := flag.String("email", "", "email claim")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	if *sub == "" {
		flag.Usage()
		os.Exit(2)
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET not set")
	}

	tok, err := auth.New(secret).Sign(*sub, *email, *ttl)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(tok)
}
