package errors_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	pkgErrors "ai-chat-bot/pkg/errors"
)

func TestHTTPError(t *testing.T) {
	err := pkgErrors.NewHTTPError(http.StatusBadGateway, "upstream failed")
	if err.Error() != "upstream failed" {
		t.Errorf("unexpected message: %s", err.Error())
	}
	if err.StatusCode != http.StatusBadGateway || err.Code != http.StatusBadGateway {
		t.Errorf("unexpected codes: %+v", err)
	}

	wrapped := fmt.Errorf("handler: %w", err)
	var target *pkgErrors.HTTPError
	if !errors.As(wrapped, &target) || target != err {
		t.Errorf("expected errors.As to find the HTTPError")
	}
}
