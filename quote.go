package oversight

import (
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/PaesslerAG/jsonpath"
)

/*
	{
	    "data": {
	        "amount": "64123.45",
	        "base": "BTC",
	        "currency": "USD"
	    }
	}
*/
const coinbaseSpotURL = "https://api.coinbase.com/v2/prices/%s-%s/spot"

// CryptoSpot fetches the current spot price of a crypto symbol (e.g. "BTC")
// expressed in the given currency.
func CryptoSpot(client *http.Client, symbol, currency string) (Money, error) {
	addr := fmt.Sprintf(coinbaseSpotURL, strings.ToUpper(symbol), strings.ToUpper(currency))
	var jobj any
	if err := jwget(client, addr, &jobj); err != nil {
		return Money{}, fmt.Errorf("error in wget %q: %w", symbol, err)
	}
	val, err := parseSpotAmount(jobj)
	if err != nil {
		return Money{}, fmt.Errorf("error parsing spot price for %q: %w", symbol, err)
	}
	return M(val, strings.ToUpper(currency)), nil
}

// parseSpotAmount extracts the price from the spot quote payload.
func parseSpotAmount(jobj any) (float64, error) {
	path := "$.data.amount"
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return math.NaN(), fmt.Errorf("%q: %w", path, err)
	}
	// because jsonpath is never clear about whether it returns a list of 1 answer, or a single answer:
	// by this call I keep the first one if any
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}

	val, ok := jval.(float64)
	if !ok {
		// this API returns the amount as a string
		sval, ok := jval.(string)
		if !ok {
			return math.NaN(), fmt.Errorf("%q is neither a float nor a string: %v", path, jval)
		}
		sval = strings.ReplaceAll(sval, ",", "")
		val, err = strconv.ParseFloat(sval, 64)
		if err != nil {
			return math.NaN(), fmt.Errorf("%q is an invalid number %q: %w", path, sval, err)
		}
	}
	if val == 0 {
		return math.NaN(), fmt.Errorf("empty spot price")
	}
	return val, nil
}
