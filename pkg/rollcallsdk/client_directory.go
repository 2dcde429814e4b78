package rollcallsdk

import (
	"context"
	"net/http"
	"net/url"
)

// ListLocations lists every location.
func (c *Client) ListLocations(ctx context.Context) ([]Location, error) {
	var out LocationList
	if err := c.getJSON(ctx, "/v1/locations", &out); err != nil {
		return nil, err
	}
	return out.Locations, nil
}

// GetLocation fetches one location.
func (c *Client) GetLocation(ctx context.Context, id string) (*Location, error) {
	var out Location
	if err := c.getJSON(ctx, "/v1/locations/"+url.PathEscape(id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateLocation adds a location.
func (c *Client) CreateLocation(ctx context.Context, req CreateLocationRequest) (*Location, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/v1/locations", req)
	if err != nil {
		return nil, err
	}

	var out Location
	if err := decodeJSON(resp, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// PatchLocation edits a location.
func (c *Client) PatchLocation(ctx context.Context, id string, req UpdateLocationRequest) (*Location, error) {
	resp, err := c.doRequest(ctx, http.MethodPatch, "/v1/locations/"+url.PathEscape(id), req)
	if err != nil {
		return nil, err
	}

	var out Location
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteLocation removes a location nobody is checked into.
func (c *Client) DeleteLocation(ctx context.Context, id string) error {
	resp, err := c.doRequest(ctx, http.MethodDelete, "/v1/locations/"+url.PathEscape(id), nil)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}

// ListUsers lists every user.
func (c *Client) ListUsers(ctx context.Context) ([]User, error) {
	var out UserList
	if err := c.getJSON(ctx, "/v1/users", &out); err != nil {
		return nil, err
	}
	return out.Users, nil
}

// GetUser fetches one user.
func (c *Client) GetUser(ctx context.Context, id string) (*User, error) {
	var out User
	if err := c.getJSON(ctx, "/v1/users/"+url.PathEscape(id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateUser adds a user.
func (c *Client) CreateUser(ctx context.Context, req CreateUserRequest) (*CreateUserResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/v1/users", req)
	if err != nil {
		return nil, err
	}

	var out CreateUserResponse
	if err := decodeJSON(resp, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// PatchUser edits a user.
func (c *Client) PatchUser(ctx context.Context, id string, req UpdateUserRequest) (*User, error) {
	resp, err := c.doRequest(ctx, http.MethodPatch, "/v1/users/"+url.PathEscape(id), req)
	if err != nil {
		return nil, err
	}

	var out User
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteUser removes a user. Their access logs remain.
func (c *Client) DeleteUser(ctx context.Context, id string) error {
	resp, err := c.doRequest(ctx, http.MethodDelete, "/v1/users/"+url.PathEscape(id), nil)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}
