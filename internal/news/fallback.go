package news

// SampleHeadlines returns static headlines shown when live feeds are
// unreachable or return too few financial stories.
func SampleHeadlines() []Item {
	return []Item{
		{
			Source:    "Economic Times",
			Title:     "Indian markets hit record high amid global rally",
			Link:      "https://economictimes.indiatimes.com",
			Sentiment: Positive,
		},
		{
			Source:    "Moneycontrol",
			Title:     "Buy Bajaj Finance; target of Rs 9000: Emkay Global Financial",
			Link:      "https://www.moneycontrol.com",
			Sentiment: Positive,
		},
		{
			Source:    "RBI",
			Title:     "RBI maintains repo rate at 6.5%",
			Link:      "https://www.rbi.org.in",
			Sentiment: Neutral,
		},
		{
			Source:    "Business Standard",
			Title:     "India's GDP growth forecast raised to 7.5% for FY25",
			Link:      "https://www.business-standard.com",
			Sentiment: Positive,
		},
		{
			Source:    "Economic Times",
			Title:     "Gold prices surge to record high amid global uncertainty",
			Link:      "https://economictimes.indiatimes.com",
			Sentiment: Positive,
		},
		{
			Source:    "Moneycontrol",
			Title:     "Rupee slips against dollar as crude prices climb",
			Link:      "https://www.moneycontrol.com",
			Sentiment: Negative,
		},
	}
}
