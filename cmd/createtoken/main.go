package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"fieldboard.com/fieldboard/security"
)

func main() {
	user := flag.String("user", "dashboard", "Token subject")
	email := flag.String("email", "", "Subject email")
	ttl := flag.Int64("ttl", 3600, "Token lifetime in seconds")
	flag.Parse()

	secret := os.Getenv("FIELDBOARD_SIGNING_SECRET")
	if secret == "" {
		log.Fatal("FIELDBOARD_SIGNING_SECRET is not set")
	}

	token, err := security.CreateIdentityToken(&security.DashboardIdentity{
		Id:       1,
		UserName: *user,
		Email:    *email,
	}, secret, *ttl)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(token)
}
