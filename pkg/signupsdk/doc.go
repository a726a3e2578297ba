/*
Package signupsdk provides a client SDK for the signup service.

# Overview

The service accepts a registration form with a profile picture and up to ten
additional files, lists registered users and serves the stored files back.
SDKClient wraps each of those operations:

	client := signupsdk.NewSDKClient("http://localhost:3000")

	// Check service health
	health, err := client.GetReadiness(ctx)

	// Register a user with a profile picture and one attachment
	err = client.Register(ctx, signupsdk.RegisterRequest{
		Name:       "Ada Lovelace",
		Email:      "ada@example.com",
		ProfilePic: signupsdk.File{Name: "ada.png", ContentType: "image/png", Data: pic},
		UploadedFiles: []signupsdk.File{
			{Name: "notes.pdf", ContentType: "application/pdf", Data: notes},
		},
	})

	// List users and fetch a stored file by its generated name
	users, err := client.ListUsers(ctx)
	data, err := client.Download(ctx, users[0].ProfilePic)

# Errors

Every non-success response is returned as an *APIError carrying the status
code and the response body. The registration and download routes answer with
plain text, the JSON routes with an ErrorResponse.

	var apiErr *signupsdk.APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusInternalServerError {
		log.Println(apiErr.Message)
	}

# Redirects

Register expects the service to answer with a redirect to /list. The SDK
client never follows redirects so the redirect itself can be checked.
*/
package signupsdk
