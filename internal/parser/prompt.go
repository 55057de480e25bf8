package parser

// BuildBookingPrompt returns the fixed extraction instruction sent with every
// uploaded document. The provider must answer with the JSON object only.
func BuildBookingPrompt() string {
	return `Extract booking/travel information from this document. Return a JSON object with these fields (use null for missing info):

{
  "type": "flight" | "hotel" | "restaurant" | "activity" | "other",
  "name": "Name/title of the booking",
  "confirmationNumber": "Confirmation or booking number",
  "date": "YYYY-MM-DD format",
  "startTime": "HH:MM format (24h)",
  "endTime": "HH:MM format (24h) if applicable",
  "location": "Address or location name",
  "notes": "Any other relevant details"
}

Return ONLY the JSON object, no other text.`
}
