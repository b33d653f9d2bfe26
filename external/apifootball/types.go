package apifootball

import "encoding/json"

// envelope is the common api-sports response wrapper. errors is an empty
// array on success and an object keyed by field on failure.
type envelope struct {
	Get        string          `json:"get"`
	Parameters map[string]any  `json:"parameters"`
	Errors     any             `json:"errors"`
	Results    int             `json:"results"`
	Paging     *paging         `json:"paging"`
	Response   json.RawMessage `json:"response"`
}

type paging struct {
	Current int `json:"current"`
	Total   int `json:"total"`
}

type fixtureItem struct {
	Fixture fixtureInfo `json:"fixture"`
	League  leagueInfo  `json:"league"`
	Teams   struct {
		Home teamRef `json:"home"`
		Away teamRef `json:"away"`
	} `json:"teams"`
	Goals struct {
		Home *int `json:"home"`
		Away *int `json:"away"`
	} `json:"goals"`
}

type fixtureInfo struct {
	ID        int64  `json:"id"`
	Referee   string `json:"referee"`
	Timezone  string `json:"timezone"`
	Date      string `json:"date"`
	Timestamp int64  `json:"timestamp"`
	Venue     struct {
		ID   *int64  `json:"id"`
		Name *string `json:"name"`
		City *string `json:"city"`
	} `json:"venue"`
	Status struct {
		Long    string `json:"long"`
		Short   string `json:"short"`
		Elapsed *int   `json:"elapsed"`
	} `json:"status"`
}

type leagueInfo struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Country string `json:"country"`
	Logo    string `json:"logo"`
	Season  int    `json:"season"`
	Round   string `json:"round"`
}

type teamRef struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Logo   string `json:"logo"`
	Winner *bool  `json:"winner"`
}

type teamItem struct {
	Team struct {
		ID       int64   `json:"id"`
		Name     string  `json:"name"`
		Code     *string `json:"code"`
		Country  *string `json:"country"`
		Founded  *int    `json:"founded"`
		National bool    `json:"national"`
		Logo     string  `json:"logo"`
	} `json:"team"`
	Venue struct {
		ID       *int64  `json:"id"`
		Name     *string `json:"name"`
		Address  *string `json:"address"`
		City     *string `json:"city"`
		Capacity *int    `json:"capacity"`
		Surface  *string `json:"surface"`
		Image    *string `json:"image"`
	} `json:"venue"`
}

type splitTotal struct {
	Home  *int `json:"home"`
	Away  *int `json:"away"`
	Total *int `json:"total"`
}

type teamStatisticsItem struct {
	League leagueInfo `json:"league"`
	Team   teamRef    `json:"team"`
	Form   *string    `json:"form"`

	Fixtures struct {
		Played splitTotal `json:"played"`
		Wins   splitTotal `json:"wins"`
		Draws  splitTotal `json:"draws"`
		Loses  splitTotal `json:"loses"`
	} `json:"fixtures"`

	Goals struct {
		For struct {
			Total splitTotal `json:"total"`
		} `json:"for"`
		Against struct {
			Total splitTotal `json:"total"`
		} `json:"against"`
	} `json:"goals"`

	BallPossession *struct {
		Average string `json:"average"`
	} `json:"ball_possession"`
}
