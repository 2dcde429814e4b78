package rollcallsdk

import (
	"context"
	"net/http"
	"net/url"
)

// CheckIn checks the caller into req.LocationID.
func (c *Client) CheckIn(ctx context.Context, req TransitionRequest) (*TransitionResponse, error) {
	return c.transition(ctx, "/v1/presence/check-in", req)
}

// UpdateLocation moves a checked in caller to req.LocationID.
func (c *Client) UpdateLocation(ctx context.Context, req TransitionRequest) (*TransitionResponse, error) {
	return c.transition(ctx, "/v1/presence/update-location", req)
}

// CheckOut checks the caller out.
func (c *Client) CheckOut(ctx context.Context, req TransitionRequest) (*TransitionResponse, error) {
	return c.transition(ctx, "/v1/presence/check-out", req)
}

func (c *Client) transition(ctx context.Context, path string, req TransitionRequest) (*TransitionResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, path, req)
	if err != nil {
		return nil, err
	}

	var out TransitionResponse
	if err := decodeJSON(resp, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	if out.Session != "" {
		c.SetToken(out.Session)
	}
	return &out, nil
}

// GetPresence returns the caller's stored presence.
func (c *Client) GetPresence(ctx context.Context) (*PresenceResponse, error) {
	var out PresenceResponse
	if err := c.getJSON(ctx, "/v1/presence", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListPresenceLocations returns the check in picker.
func (c *Client) ListPresenceLocations(ctx context.Context) ([]LocationOption, error) {
	var out LocationOptions
	if err := c.getJSON(ctx, "/v1/presence/locations", &out); err != nil {
		return nil, err
	}
	return out.Locations, nil
}

// OwnTimeline pages through the caller's own access logs. Only the
// location, date and paging fields of q apply.
func (c *Client) OwnTimeline(ctx context.Context, q AccessLogQuery) (*AccessLogPage, error) {
	return c.accessLogs(ctx, "/v1/presence/timeline", q)
}

// QueryAccessLogs searches every user's access logs.
func (c *Client) QueryAccessLogs(ctx context.Context, q AccessLogQuery) (*AccessLogPage, error) {
	return c.accessLogs(ctx, "/v1/access-logs", q)
}

// UserTimeline pages through one user's access logs.
func (c *Client) UserTimeline(ctx context.Context, userID string, q AccessLogQuery) (*AccessLogPage, error) {
	return c.accessLogs(ctx, "/v1/timeline/users/"+url.PathEscape(userID), q)
}

// LocationTimeline pages through one location's access logs.
func (c *Client) LocationTimeline(ctx context.Context, locationID string, q AccessLogQuery) (*AccessLogPage, error) {
	return c.accessLogs(ctx, "/v1/timeline/locations/"+url.PathEscape(locationID), q)
}

func (c *Client) accessLogs(ctx context.Context, path string, q AccessLogQuery) (*AccessLogPage, error) {
	if v := q.Values(); len(v) > 0 {
		path += "?" + v.Encode()
	}
	var out AccessLogPage
	if err := c.getJSON(ctx, path, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
