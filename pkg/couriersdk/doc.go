/*
Package couriersdk provides a client SDK for the Courier messaging service.

# Overview

The Client type covers the whole HTTP surface: account registration and
login, the user directory, and the message ledger. Login and Register store
the issued bearer token on the client, so subsequent calls are authenticated
without further setup.

	client := couriersdk.NewClient("https://courier.example.com")

	// Register a new account (also logs you in)
	_, err := client.Register(ctx, couriersdk.RegisterRequest{
		Username:  "alice",
		Password:  "hunter2-but-longer",
		FirstName: "Alice",
		LastName:  "Nguyen",
	})

	// Or log in to an existing one
	_, err = client.Login(ctx, "alice", "hunter2-but-longer")

	// Send and read messages
	msg, err := client.Send(ctx, couriersdk.SendMessageRequest{
		ToUsername: "bob",
		Body:       "lunch?",
	})
	inbox, err := client.MessagesTo(ctx, "alice")
	_, err = client.MarkRead(ctx, inbox[0].ID)

To resume with a token issued earlier, use SetToken:

	client := couriersdk.NewClient("https://courier.example.com")
	client.SetToken(savedToken)

# Error Handling

Non-2xx responses come back as *APIError with the HTTP status, the
machine-readable code and the server's description:

	_, err := client.Login(ctx, "alice", "wrong")
	var apiErr *couriersdk.APIError
	if errors.As(err, &apiErr) {
		fmt.Println(apiErr.Code) // "invalid_credentials"
	}

The Client is not safe for concurrent use while Login, Register or SetToken
are being called; share a token across goroutines by setting it once up
front.
*/
package couriersdk
