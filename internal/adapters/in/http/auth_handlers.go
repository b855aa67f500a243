package http

import (
	"net/http"

	"luggage/internal/core/application/usecases/commands"
	"luggage/internal/core/application/usecases/queries"
	"luggage/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// RegisterUser handles POST /api/auth/register.
func (s *Server) RegisterUser(ctx echo.Context) error {
	var body servers.RegisterUserJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return s.invalidBody(ctx)
	}

	cmd, err := commands.NewRegisterUserCommand(body.Email, body.Password, body.Name, body.Phone)
	if err != nil {
		return s.fail(ctx, err)
	}

	result, err := s.h.RegisterUser.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.AuthResponse{Token: result.Token, User: toUser(result.User)})
}

// LoginUser handles POST /api/auth/login.
func (s *Server) LoginUser(ctx echo.Context) error {
	var body servers.LoginUserJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return s.invalidBody(ctx)
	}

	cmd, err := commands.NewLoginCommand(body.Email, body.Password)
	if err != nil {
		return s.fail(ctx, err)
	}

	result, err := s.h.Login.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.AuthResponse{Token: result.Token, User: toUser(result.User)})
}

// GetCurrentUser handles GET /api/auth/me.
func (s *Server) GetCurrentUser(ctx echo.Context) error {
	principal, err := RequirePrincipal(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewGetUserQuery(principal.UserID)
	if err != nil {
		return s.fail(ctx, err)
	}

	u, err := s.h.GetUser.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.UserResponse{User: servers.User{
		Id:    u.ID.Bytes(),
		Email: u.Email,
		Name:  u.Name,
		Phone: u.Phone,
	}})
}
