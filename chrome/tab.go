package chrome

// TabRecord is a single open tab at the moment of a query.
//
// Window and Tab are the browser-assigned 1-based positions. They are only
// valid for the query that produced them; opening or closing tabs elsewhere
// shifts them, so there is no stability guarantee across calls.
type TabRecord struct {
	Window int    `json:"window"`
	Tab    int    `json:"tab"`
	URL    string `json:"url"`
	Title  string `json:"title"`
}
