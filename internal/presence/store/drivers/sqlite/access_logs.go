package sqlite

import (
	"context"
	"database/sql"
	"strings"

	"github.com/aussiebroadwan/rollcall/internal/presence/domain"
)

type accessLogsRepo struct{ q querier }

const accessLogColumns = `id, action, action_time, recorded_at, user_id, location_id,
	user_name, user_email, location_name, location_address, location_latitude, location_longitude,
	ip, user_agent, browser, os, device, country, city`

func scanAccessLog(row rowScanner) (domain.AccessLog, error) {
	var (
		l                    domain.AccessLog
		actionTime, recorded string
		userID, locationID   sql.NullString
		lat, lng             sql.NullFloat64
	)

	err := row.Scan(
		&l.ID, &l.Action, &actionTime, &recorded, &userID, &locationID,
		&l.UserName, &l.UserEmail, &l.Location.Name, &l.Location.Address, &lat, &lng,
		&l.IP, &l.UserAgent, &l.Browser, &l.OS, &l.Device, &l.Country, &l.City,
	)
	if err != nil {
		return domain.AccessLog{}, mapErr(err)
	}

	l.UserID = userID.String
	l.LocationID = locationID.String
	l.Location.Latitude = floatPtr(lat)
	l.Location.Longitude = floatPtr(lng)

	if l.ActionTime, err = parseTime(actionTime); err != nil {
		return domain.AccessLog{}, err
	}
	if l.RecordedAt, err = parseTime(recorded); err != nil {
		return domain.AccessLog{}, err
	}
	return l, nil
}

// searchText joins the searchable snapshot fields, folded to lower case.
// The unit separator keeps a term from matching across two fields.
func searchText(l domain.AccessLog) string {
	return strings.ToLower(strings.Join([]string{
		l.UserName, l.UserEmail, l.Location.Name, l.Location.Address,
	}, "\x1f"))
}

func (r *accessLogsRepo) AppendAccessLog(ctx context.Context, l domain.AccessLog) error {
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO access_logs (`+accessLogColumns+`, search_text)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		l.ID, l.Action, formatTime(l.ActionTime), formatTime(l.RecordedAt),
		nullString(l.UserID), nullString(l.LocationID),
		l.UserName, l.UserEmail, l.Location.Name, l.Location.Address,
		nullFloat(l.Location.Latitude), nullFloat(l.Location.Longitude),
		l.IP, l.UserAgent, l.Browser, l.OS, l.Device, l.Country, l.City,
		searchText(l),
	)
	return mapErr(err)
}

func (r *accessLogsRepo) GetAccessLogByID(ctx context.Context, id string) (domain.AccessLog, error) {
	return scanAccessLog(r.q.QueryRowContext(ctx, `SELECT `+accessLogColumns+` FROM access_logs WHERE id = ?`, id))
}

var sortColumns = map[domain.SortField]string{
	domain.SortActionTime:   "action_time",
	domain.SortRecordedAt:   "recorded_at",
	domain.SortAction:       "action",
	domain.SortUserName:     "user_name COLLATE NOCASE",
	domain.SortLocationName: "location_name COLLATE NOCASE",
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func accessLogWhere(q domain.AccessLogQuery) (string, []any) {
	var (
		conds []string
		args  []any
	)
	if q.UserID != "" {
		conds = append(conds, "user_id = ?")
		args = append(args, q.UserID)
	}
	if q.LocationID != "" {
		conds = append(conds, "location_id = ?")
		args = append(args, q.LocationID)
	}
	if q.Action.Valid() {
		conds = append(conds, "action = ?")
		args = append(args, q.Action.String())
	}
	if q.From != nil {
		conds = append(conds, "action_time >= ?")
		args = append(args, formatTime(*q.From))
	}
	if q.To != nil {
		conds = append(conds, "action_time <= ?")
		args = append(args, formatTime(*q.To))
	}
	if s := strings.TrimSpace(q.Search); s != "" {
		// Both sides are folded in Go; LIKE alone only folds ASCII.
		pattern := "%" + likeEscaper.Replace(strings.ToLower(s)) + "%"
		conds = append(conds, `search_text LIKE ? ESCAPE '\'`)
		args = append(args, pattern)
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func (r *accessLogsRepo) QueryAccessLogs(ctx context.Context, q domain.AccessLogQuery) ([]domain.AccessLog, int, error) {
	where, args := accessLogWhere(q)

	var total int
	if err := r.q.QueryRowContext(ctx, `SELECT COUNT(*) FROM access_logs`+where, args...).Scan(&total); err != nil {
		return nil, 0, mapErr(err)
	}

	col, ok := sortColumns[q.SortField]
	if !ok {
		col = sortColumns[domain.SortActionTime]
	}
	dir := " ASC"
	if q.SortDesc {
		dir = " DESC"
	}
	order := " ORDER BY " + col + dir + ", recorded_at" + dir + ", id" + dir

	rows, err := r.q.QueryContext(ctx,
		`SELECT `+accessLogColumns+` FROM access_logs`+where+order+` LIMIT ? OFFSET ?`,
		append(args, q.PageSize, q.Offset())...,
	)
	if err != nil {
		return nil, 0, mapErr(err)
	}
	defer rows.Close()

	out := make([]domain.AccessLog, 0, q.PageSize)
	for rows.Next() {
		l, err := scanAccessLog(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, l)
	}
	return out, total, mapErr(rows.Err())
}
