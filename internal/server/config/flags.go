package config

import (
	"flag"
	"os"
	"time"

	"github.com/connectly/authsvc/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":8080")
//	-d string   PostgreSQL DSN
//	-s string   JWT HMAC secret key
//	-t int      signup token validity, minutes
//	-r int      signin token validity, minutes
//	-m int      authToken cookie max-age, minutes
//	-k bool     set the Secure attribute on the authToken cookie
//	-u string   S3 root user
//	-p string   S3 root password
//	-b string   S3 bucket name
//	-g string   S3 region
//	-e string   S3 base endpoint (e.g., "http://127.0.0.1:9000/")
//
// The function first filters os.Args to only the flags it recognizes using
// flagx.FilterArgs, avoiding collisions with other components. Duration
// flags are accepted as integers in minutes.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-s", "-t", "-r", "-m", "-k", "-u", "-p", "-b", "-g", "-e"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrHTTP, "a", config.EndpointAddrHTTP, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")

	signupTokenValidity := fs.Int("t", int(config.SignupTokenValidityDuration.Minutes()), "signup_token_validity_duration (in minutes)")
	signinTokenValidity := fs.Int("r", int(config.SigninTokenValidityDuration.Minutes()), "signin_token_validity_duration (in minutes)")
	cookieMaxAge := fs.Int("m", int(config.CookieMaxAge.Minutes()), "cookie_max_age (in minutes)")
	fs.BoolVar(&config.CookieSecure, "k", config.CookieSecure, "set the Secure attribute on the authToken cookie")

	fs.StringVar(&config.S3RootUser, "u", config.S3RootUser, "S3 root user")
	fs.StringVar(&config.S3RootPassword, "p", config.S3RootPassword, "S3 root password")
	fs.StringVar(&config.S3Bucket, "b", config.S3Bucket, "S3 bucket")
	fs.StringVar(&config.S3Region, "g", config.S3Region, "S3 region")
	fs.StringVar(&config.S3BaseEndpoint, "e", config.S3BaseEndpoint, "S3 base endpoint")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.SignupTokenValidityDuration = time.Duration(*signupTokenValidity) * time.Minute
	config.SigninTokenValidityDuration = time.Duration(*signinTokenValidity) * time.Minute
	config.CookieMaxAge = time.Duration(*cookieMaxAge) * time.Minute
}
