package intelligence

import (
	"fmt"
	"time"
)

const parseSystemPrompt = `You extract wedding photography booking details from text.
Respond with a single JSON object and nothing else. Use these keys:
clientName, clientPhone, groomName, brideName, eventTitle, venue, notes,
startDate, endDate, packageAmount, advanceAmount.
Dates are YYYY-MM-DD. Amounts are whole numbers in BDT with no separators.
Omit unknown string fields as "" and unknown amounts as 0. Do not invent
details that are not in the text.`

func buildParsePrompt(text string, now time.Time) string {
	return fmt.Sprintf(`Today is %s. Resolve relative dates against it.

Booking request:
%s`, now.Format("2006-01-02"), text)
}
