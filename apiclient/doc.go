// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package apiclient is a Go client for the userbook HTTP API.

	c, err := apiclient.New(apiclient.DefaultBaseURL)
	users, err := c.ListUsers(ctx)

Non-2xx responses come back as *APIError carrying the status code and the
server's error text.
*/
package apiclient
