package context

import (
	"log/slog"

	"perks/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// SetSession stores the authenticated caller on the echo context and tags the
// request-scoped logger with the user ID, so usecase logs for a redemption
// can be traced back to the student who scanned.
func SetSession(c echo.Context, session entity.Session) {
	c.Set(string(KeySession), session)

	req := c.Request()
	ctx := req.Context()
	if logger := GetLogger(ctx); logger != nil {
		ctx = WithLogger(ctx, logger.With(slog.String("user_id", session.UserID.String())))
		c.SetRequest(req.WithContext(ctx))
	}
}

// GetSession returns the session set by SetSession.
func GetSession(c echo.Context) (entity.Session, bool) {
	session, ok := c.Get(string(KeySession)).(entity.Session)

	return session, ok
}
