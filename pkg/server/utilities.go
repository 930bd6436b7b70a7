package server

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/raterudder/solarledger/pkg/financing"
	"github.com/raterudder/solarledger/pkg/types"
	"github.com/raterudder/solarledger/pkg/utility"
)

func (s *Server) handleListUtilities(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, utility.ListUtilities())
}

type optionsResponse struct {
	NEMVersions           []types.Option `json:"nemVersions"`
	Programs              []types.Option `json:"programs"`
	EscalatorPresets      []float64      `json:"escalatorPresets"`
	NEM2ConnectionFee     float64        `json:"nem2ConnectionFee"`
	MonthsBeforeCredit    int            `json:"monthsBeforeCredit"`
	DefaultLoanTermYears  int            `json:"defaultLoanTermYears"`
	CurrentProfileVersion int            `json:"currentProfileVersion"`
}

func (s *Server) handleListOptions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, optionsResponse{
		NEMVersions:           utility.NEMOptions(),
		Programs:              utility.ProgramOptions(),
		EscalatorPresets:      utility.EscalatorPresets,
		NEM2ConnectionFee:     utility.NEM2ConnectionFee,
		MonthsBeforeCredit:    financing.MonthsBeforeCredit,
		DefaultLoanTermYears:  types.DefaultLoanTermYears,
		CurrentProfileVersion: types.CurrentProfileVersion,
	})
}

const maxRateYears = 100

func queryUtility(r *http.Request) (types.UtilityID, error) {
	u := types.UtilityID(r.URL.Query().Get("utility"))
	if u == "" {
		return "", errors.New("missing utility")
	}
	if !u.Valid() {
		return "", utility.ErrUnknownUtility
	}
	return u, nil
}

func queryYear(r *http.Request, key string, def int) (int, error) {
	v := r.URL.Query().Get(key)
	if v == "" {
		return def, nil
	}
	y, err := strconv.Atoi(v)
	if err != nil {
		return 0, errors.New("invalid " + key)
	}
	return y, nil
}

func (s *Server) handleRates(w http.ResponseWriter, r *http.Request) {
	u, err := queryUtility(r)
	if err != nil {
		writeJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}
	first, _, err := utility.TableYears(u)
	if err != nil {
		writeJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}
	from, err := queryYear(r, "from", first)
	if err != nil {
		writeJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}
	to, err := queryYear(r, "to", s.currentMonth().Year)
	if err != nil {
		writeJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if to-from > maxRateYears {
		writeJSONError(w, "year range too large", http.StatusBadRequest)
		return
	}
	var care bool
	if v := r.URL.Query().Get("care"); v != "" {
		care, err = strconv.ParseBool(v)
		if err != nil {
			writeJSONError(w, "invalid care", http.StatusBadRequest)
			return
		}
	}

	rates, err := utility.RatesBetween(u, from, to, care)
	if err != nil {
		writeJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, rates)
}

func (s *Server) handleTOU(w http.ResponseWriter, r *http.Request) {
	u, err := queryUtility(r)
	if err != nil {
		writeJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}
	day := s.now()
	if v := r.URL.Query().Get("date"); v != "" {
		day, err = time.ParseInLocation(time.DateOnly, v, utility.Location())
		if err != nil {
			writeJSONError(w, "invalid date", http.StatusBadRequest)
			return
		}
	}

	prices, err := utility.PricesOnDay(u, day)
	if err != nil {
		writeJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, prices)
}
