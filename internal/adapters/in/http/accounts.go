package http

import (
	"errors"
	"net/http"

	"parcelshift/internal/core/application/usecases/commands"
	"parcelshift/internal/core/application/usecases/queries"
	"parcelshift/internal/core/domain/model/account"
	"parcelshift/internal/core/domain/model/kernel"
	"parcelshift/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

type registerAccountRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterAccount creates a new user account with the default role.
func (s *Server) RegisterAccount(c echo.Context) error {
	var req registerAccountRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Success: false, Message: "invalid request body"})
	}

	accountID := kernel.NewUUID()
	cmd, err := commands.NewRegisterAccountCommand(accountID, req.Name, req.Email, req.Password)
	if err != nil {
		return respondError(c, err)
	}

	if err := s.commands.RegisterAccount.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, statusResponse{Success: true, Message: "account created"})
}

// SearchAccounts finds accounts whose name or email matches the search term.
func (s *Server) SearchAccounts(c echo.Context) error {
	query, err := queries.NewSearchAccountsQuery(c.QueryParam("search"))
	if err != nil {
		return respondError(c, err)
	}

	accounts, err := s.queries.SearchAccounts.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}

	out := make([]accountResponse, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, accountResponse{
			ID:        a.ID.String(),
			Name:      a.Name,
			Email:     a.Email,
			Role:      a.Role,
			CreatedAt: a.CreatedAt,
		})
	}

	return c.JSON(http.StatusOK, out)
}

type accountRoleEnvelope struct {
	Role string `json:"role"`
}

// GetAccountRole reports the role the given email holds.
func (s *Server) GetAccountRole(c echo.Context) error {
	query, err := queries.NewGetAccountRoleQuery(c.QueryParam("email"))
	if err != nil {
		return respondError(c, err)
	}

	found, err := s.queries.GetAccountRole.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, accountRoleEnvelope{Role: found.Role})
}

type setAccountRoleRequest struct {
	Role string `json:"role"`
}

// SetAccountRole changes an account's role. Admin only.
func (s *Server) SetAccountRole(c echo.Context) error {
	var req setAccountRoleRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Success: false, Message: "invalid request body"})
	}

	accountID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}

	cmd, err := commands.NewSetAccountRoleCommand(accountID, account.Role(req.Role))
	if err != nil {
		return respondError(c, err)
	}

	if err := s.commands.SetAccountRole.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, statusResponse{Success: true, Message: "role updated"})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
	Role    string `json:"role"`
}

// Login verifies credentials against the stored hash and issues a bearer
// token. Unknown emails and wrong passwords get the same answer.
func (s *Server) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Success: false, Message: "invalid request body"})
	}

	uow := s.uowFactory.Create()
	found, err := uow.AccountRepository().GetByEmail(c.Request().Context(), req.Email)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return c.JSON(http.StatusUnauthorized, errorResponse{Success: false, Message: "invalid credentials"})
		}
		return respondError(c, err)
	}

	if err := found.VerifyPassword(req.Password); err != nil {
		return c.JSON(http.StatusUnauthorized, errorResponse{Success: false, Message: "invalid credentials"})
	}

	token, err := s.auth.IssueToken(found.Email(), found.Role())
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, loginResponse{
		Success: true,
		Token:   token,
		Role:    string(found.Role()),
	})
}
