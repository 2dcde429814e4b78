package http

import (
	"github.com/aussiebroadwan/rollcall/internal/presence/domain"
	"github.com/aussiebroadwan/rollcall/pkg/rollcallsdk"
)

func toUser(u domain.User) rollcallsdk.User {
	return rollcallsdk.User{
		ID:                u.ID,
		Name:              u.Name,
		Email:             u.Email,
		Role:              u.Role.String(),
		Status:            string(u.Status),
		Presence:          string(u.Presence),
		CurrentLocationID: u.CurrentLocationID,
		LastLogin:         toLoginInfo(u.LastLogin),
		LastLogout:        u.LastLogout,
		MFAEnabled:        u.MFAEnabled != nil,
		CreatedAt:         u.CreatedAt,
		UpdatedAt:         u.UpdatedAt,
	}
}

func toUsers(us []domain.User) []rollcallsdk.User {
	out := make([]rollcallsdk.User, 0, len(us))
	for _, u := range us {
		out = append(out, toUser(u))
	}
	return out
}

func toLoginInfo(l *domain.LoginInfo) *rollcallsdk.LoginInfo {
	if l == nil {
		return nil
	}
	return &rollcallsdk.LoginInfo{
		At:        l.At,
		IP:        l.IP,
		UserAgent: l.UserAgent,
		Browser:   l.Browser,
		OS:        l.OS,
		Device:    l.Device,
	}
}

func toLocation(l domain.Location) rollcallsdk.Location {
	return rollcallsdk.Location{
		ID:          l.ID,
		Name:        l.Name,
		Address:     l.Address,
		Latitude:    l.Latitude,
		Longitude:   l.Longitude,
		Description: l.Description,
		CreatedAt:   l.CreatedAt,
		UpdatedAt:   l.UpdatedAt,
	}
}

func toLocationPtr(l *domain.Location) *rollcallsdk.Location {
	if l == nil {
		return nil
	}
	out := toLocation(*l)
	return &out
}

func toLocations(ls []domain.Location) []rollcallsdk.Location {
	out := make([]rollcallsdk.Location, 0, len(ls))
	for _, l := range ls {
		out = append(out, toLocation(l))
	}
	return out
}

func toLocationOptions(ls []domain.Location) []rollcallsdk.LocationOption {
	out := make([]rollcallsdk.LocationOption, 0, len(ls))
	for _, l := range ls {
		out = append(out, rollcallsdk.LocationOption{ID: l.ID, Name: l.Name, Address: l.Address})
	}
	return out
}

func toRecord(r domain.AccessLog) rollcallsdk.AccessLogRecord {
	return rollcallsdk.AccessLogRecord{
		ID:                r.ID,
		Action:            r.Action.String(),
		ActionTime:        r.ActionTime,
		RecordedAt:        r.RecordedAt,
		UserID:            r.UserID,
		UserName:          r.UserName,
		UserEmail:         r.UserEmail,
		LocationID:        r.LocationID,
		LocationName:      r.Location.Name,
		LocationAddress:   r.Location.Address,
		LocationLatitude:  r.Location.Latitude,
		LocationLongitude: r.Location.Longitude,
		IP:                r.IP,
		UserAgent:         r.UserAgent,
		Browser:           r.Browser,
		OS:                r.OS,
		Device:            r.Device,
		Country:           r.Country,
		City:              r.City,
	}
}

func toPage(p domain.AccessLogPage) rollcallsdk.AccessLogPage {
	records := make([]rollcallsdk.AccessLogRecord, 0, len(p.Records))
	for _, r := range p.Records {
		records = append(records, toRecord(r))
	}
	return rollcallsdk.AccessLogPage{
		Records: records,
		Pagination: rollcallsdk.Pagination{
			Page:       p.Page,
			PageSize:   p.PageSize,
			Total:      p.Total,
			TotalPages: p.TotalPages,
		},
	}
}
