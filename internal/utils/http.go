package utils

import (
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"
)

// ExtractIDFromParams retrieves the "id" parameter from the request context
// and removes file extensions like ".json".
func ExtractIDFromParams(r *http.Request) string {
	params := httprouter.ParamsFromContext(r.Context())
	rawID := params.ByName("id")
	return strings.Split(rawID, ".json")[0]
}
