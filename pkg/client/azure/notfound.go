package azure

import (
	"errors"
	"net/http"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
)

// armNotFoundCode is the structured error code ARM returns when the parent
// cluster resource does not exist.
const armNotFoundCode = "ResourceNotFound"

// IsNotFound reports whether err is an ARM 404 response.
func IsNotFound(err error) bool {
	var responseError *azcore.ResponseError

	return errors.As(err, &responseError) &&
		responseError.StatusCode == http.StatusNotFound
}

// IsClusterNotFound reports whether a 404 was caused by the cluster resource
// itself being absent, as opposed to the configuration on it. The structured
// error code is checked first; matching on the error text is a fallback for
// responses that omit it.
func IsClusterNotFound(err error) bool {
	var responseError *azcore.ResponseError

	if !errors.As(err, &responseError) || responseError.StatusCode != http.StatusNotFound {
		return false
	}

	if responseError.ErrorCode != "" {
		return responseError.ErrorCode == armNotFoundCode
	}

	return strings.Contains(err.Error(), "("+armNotFoundCode+")")
}
