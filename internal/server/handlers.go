package server

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/dmitrymomot/liquidfilters/pkg/locale"
	"github.com/dmitrymomot/liquidfilters/pkg/money"
	"github.com/dmitrymomot/liquidfilters/pkg/slug"
)

type handleResponse struct {
	Handle string `json:"handle"`
}

func (s *Server) handleSlug(w http.ResponseWriter, r *http.Request) error {
	q := r.URL.Query()
	if !q.Has("text") {
		return fmt.Errorf("%w: text", ErrMissingParam)
	}

	var opts []slug.Option
	if v := q.Get("max_length"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return badRequest(fmt.Errorf("invalid max_length %q", v))
		}
		opts = append(opts, slug.MaxLength(n))
	}

	writeJSON(w, http.StatusOK, handleResponse{Handle: slug.Make(q.Get("text"), opts...)})
	return nil
}

type moneyResponse struct {
	Formatted   string            `json:"formatted"`
	Conventions money.Conventions `json:"conventions"`
}

// Output formats accepted by the money endpoint.
const (
	formatCurrency        = "currency"
	formatNumber          = "number"
	formatNoTrailingZeros = "no_trailing_zeros"
)

func (s *Server) handleMoney(w http.ResponseWriter, r *http.Request) error {
	q := r.URL.Query()
	if !q.Has("amount") {
		return fmt.Errorf("%w: amount", ErrMissingParam)
	}

	amount, err := money.ParseAmount(q.Get("amount"))
	if err != nil {
		return err
	}

	conv, err := s.conventions(r)
	if err != nil {
		return err
	}

	var out string
	switch f := q.Get("format"); f {
	case "", formatCurrency:
		out, err = money.FormatCurrency(amount, conv)
	case formatNumber:
		out, err = money.FormatNumber(amount, conv)
	case formatNoTrailingZeros:
		out, err = money.FormatCurrencyNoTrailingZeros(amount, conv)
	default:
		return badRequest(fmt.Errorf("unknown format %q", f))
	}
	if err != nil {
		return err
	}

	writeJSON(w, http.StatusOK, moneyResponse{Formatted: out, Conventions: conv})
	return nil
}

// conventions resolves the locale parameter, then Accept-Language, then the active
// process-wide locale.
func (s *Server) conventions(r *http.Request) (money.Conventions, error) {
	if name := r.URL.Query().Get("locale"); name != "" {
		return locale.Lookup(name)
	}
	if al := r.Header.Get("Accept-Language"); al != "" {
		return locale.Negotiate(al), nil
	}
	return locale.Active(), nil
}
