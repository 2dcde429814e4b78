/*
Package rollcallsdk provides the wire types and a client for the rollcall
presence service.

# Overview

The types in this package are shared by the server, which renders them as
JSON, and by clients, which decode them. Errors travel as APIError values
with a machine-readable code:

	{"error": "no_active_check_in", "error_description": "not checked in"}

# Client

A Client talks to one rollcall instance. Log in first; the session
credential is kept on the client and sent as a bearer token:

	c := rollcallsdk.NewClient("http://localhost:8080")
	if _, err := c.Login(ctx, rollcallsdk.LoginRequest{Email: email, Password: pw}); err != nil {
		return err
	}

	res, err := c.CheckIn(ctx, rollcallsdk.TransitionRequest{LocationID: locID})

Presence transitions return a refreshed credential carrying the new
location; the client adopts it automatically.

# Errors

Every non-2xx response is returned as *APIError. Use IsCode to branch on
the reason:

	if rollcallsdk.IsCode(err, rollcallsdk.ErrorCodeNoActiveCheckIn) {
		// not checked in
	}
*/
package rollcallsdk
