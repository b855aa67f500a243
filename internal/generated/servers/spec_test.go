package servers_test

import (
	"reflect"
	"strings"
	"testing"

	"luggage/internal/generated/servers"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSwagger(t *testing.T) {
	swagger, err := servers.GetSwagger()
	require.NoError(t, err)

	for _, path := range []string{
		"/api/auth/register",
		"/api/auth/login",
		"/api/auth/me",
		"/api/travelers",
		"/api/travelers/my-listings",
		"/api/senders",
		"/api/senders/my-listings",
		"/api/search/listings",
		"/api/matches",
		"/api/matches/{id}/accept",
		"/api/matches/{id}/reject",
		"/api/matches/{id}/dropoff-complete",
		"/api/matches/{id}/pickup-complete",
		"/api/matches/{id}/destination-dropoff-complete",
		"/api/matches/{id}/destination-pickup-complete",
		"/api/matches/{id}/update",
		"/api/matches/{id}/report-issue",
		"/api/airports/search",
		"/api/flights/lookup",
	} {
		assert.NotNil(t, swagger.Paths.Find(path), path)
	}
}

// The handler interface and the registered routes must follow the document.
func TestServerInterfaceFollowsDocument(t *testing.T) {
	swagger, err := servers.GetSwagger()
	require.NoError(t, err)

	iface := reflect.TypeOf((*servers.ServerInterface)(nil)).Elem()
	documented := map[string]bool{}
	var operations []string
	for path, item := range swagger.Paths.Map() {
		for method, op := range item.Operations() {
			documented[method+" "+strings.ReplaceAll(strings.ReplaceAll(path, "{", ":"), "}", "")] = true
			operations = append(operations, op.OperationID)
			_, ok := iface.MethodByName(op.OperationID)
			assert.True(t, ok, "ServerInterface has no %s", op.OperationID)
		}
	}
	assert.Len(t, operations, iface.NumMethod())

	e := echo.New()
	servers.RegisterHandlers(e, nil)
	registered := map[string]bool{}
	for _, r := range e.Routes() {
		registered[r.Method+" "+r.Path] = true
	}
	assert.Equal(t, documented, registered)
}
