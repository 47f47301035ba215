// Command basic demonstrates typed request execution against a public
// JSON API, including error-taxonomy handling and an asynchronous call.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/kroma-labs/courier-go/courier"
)

type Post struct {
	ID     int    `json:"id"`
	UserID int    `json:"userId"`
	Title  string `json:"title"`
}

func main() {
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	exec := courier.New(
		courier.WithServiceName("basic-example"),
		courier.WithLogger(logger),
		courier.WithDebug(true),
	)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Synchronous call.
	post, err := courier.Do(ctx, exec,
		courier.NewRequest[Post]("https://jsonplaceholder.typicode.com/posts/1"))
	if err != nil {
		report(err)
		return
	}
	fmt.Printf("fetched post %d: %s\n", post.ID, post.Title)

	// Asynchronous call with a JSON parameter body.
	req := courier.NewRequest[Post]("https://jsonplaceholder.typicode.com/posts").
		Method(courier.MethodPost).
		Param("userId", courier.Number(7)).
		Param("title", courier.String("hello from courier"))

	call := courier.Perform(ctx, exec, req)
	created, err := call.Wait(ctx)
	if err != nil {
		report(err)
		return
	}
	fmt.Printf("created post %d\n", created.ID)
}

func report(err error) {
	switch {
	case errors.Is(err, courier.ErrAuthenticationFailure):
		fmt.Println("please sign in again")
	case errors.Is(err, courier.ErrServerError):
		var cerr *courier.Error
		errors.As(err, &cerr)
		fmt.Printf("server rejected the request with status %d\n", cerr.StatusCode())
	case errors.Is(err, courier.ErrNoConnectivity):
		fmt.Println("network is unavailable")
	default:
		fmt.Printf("request failed: %v\n", err)
	}
}
