// Command client is a small CLI over the chirp REST API. It drives the same
// adapter package the tests use, one subcommand per API operation:
//
//	client -a localhost:8080 register -username ada -email ada@example.com -password secret
//	client -a localhost:8080 post -token <jwt> -message "hello world"
//	client -a localhost:8080 tweets
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/mlutsenko/chirp/internal/adapter"
	"github.com/mlutsenko/chirp/internal/logger"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewLogger("chirp-client")

	address := flag.String("a", "localhost:8080", "server address (host:port or URL)")
	token := flag.String("token", "", "bearer token for authenticated requests")
	timeout := flag.Duration("timeout", 15*time.Second, "request timeout")
	version := flag.Bool("version", false, "print build info and exit")
	flag.Parse()

	if *version {
		printBuildInfo()
		return
	}

	client, err := adapter.NewHTTPAPIClient(adapter.ClientConfig{
		BaseURL: *address,
		Timeout: *timeout,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("error creating api client")
	}
	if *token != "" {
		client.SetToken(*token)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if err := run(ctx, client, flag.Args()); err != nil {
		log.Fatal().Err(err).Msg("command failed")
	}
}

func run(ctx context.Context, client adapter.APIClient, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("no command given; expected one of: register, login, tweets, tweet, post, update, delete, user-tweets")
	}

	command, rest := args[0], args[1:]

	switch command {
	case "register":
		fs := flag.NewFlagSet("register", flag.ExitOnError)
		username := fs.String("username", "", "username")
		email := fs.String("email", "", "email address")
		password := fs.String("password", "", "password")
		fs.Parse(rest)

		result, err := client.Register(ctx, *username, *email, *password)
		if err != nil {
			return err
		}
		return printJSON(result)

	case "login":
		fs := flag.NewFlagSet("login", flag.ExitOnError)
		email := fs.String("email", "", "email address")
		password := fs.String("password", "", "password")
		fs.Parse(rest)

		result, err := client.Login(ctx, *email, *password)
		if err != nil {
			return err
		}
		return printJSON(result)

	case "tweets":
		tweets, err := client.ListTweets(ctx)
		if err != nil {
			return err
		}
		return printJSON(tweets)

	case "tweet":
		fs := flag.NewFlagSet("tweet", flag.ExitOnError)
		id := fs.Int64("id", 0, "tweet id")
		fs.Parse(rest)

		tweet, err := client.GetTweet(ctx, *id)
		if err != nil {
			return err
		}
		return printJSON(tweet)

	case "post":
		fs := flag.NewFlagSet("post", flag.ExitOnError)
		message := fs.String("message", "", "tweet message")
		fs.Parse(rest)

		tweet, err := client.CreateTweet(ctx, *message)
		if err != nil {
			return err
		}
		return printJSON(tweet)

	case "update":
		fs := flag.NewFlagSet("update", flag.ExitOnError)
		id := fs.Int64("id", 0, "tweet id")
		message := fs.String("message", "", "replacement message")
		fs.Parse(rest)

		tweet, err := client.UpdateTweet(ctx, *id, *message)
		if err != nil {
			return err
		}
		return printJSON(tweet)

	case "delete":
		fs := flag.NewFlagSet("delete", flag.ExitOnError)
		id := fs.Int64("id", 0, "tweet id")
		fs.Parse(rest)

		tweet, err := client.DeleteTweet(ctx, *id)
		if err != nil {
			return err
		}
		return printJSON(tweet)

	case "user-tweets":
		fs := flag.NewFlagSet("user-tweets", flag.ExitOnError)
		id := fs.Int64("id", 0, "user id")
		fs.Parse(rest)

		tweets, err := client.ListUserTweets(ctx, *id)
		if err != nil {
			return err
		}
		return printJSON(tweets)

	default:
		return fmt.Errorf("unknown command %q", command)
	}
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
