package refdata

import "sort"

// Team abbreviation tables keyed the way ESPN reports them. Several
// franchises appear under more than one abbreviation (e.g. WAS/WSH), so
// these maps are not invertible.

// NFLTeams maps NFL team abbreviations to full franchise names.
var NFLTeams = map[string]string{
	"ARI": "Arizona Cardinals", "ATL": "Atlanta Falcons", "BAL": "Baltimore Ravens",
	"BUF": "Buffalo Bills", "CAR": "Carolina Panthers", "CHI": "Chicago Bears",
	"CIN": "Cincinnati Bengals", "CLE": "Cleveland Browns", "DAL": "Dallas Cowboys",
	"DEN": "Denver Broncos", "DET": "Detroit Lions", "GB": "Green Bay Packers",
	"HOU": "Houston Texans", "IND": "Indianapolis Colts", "JAX": "Jacksonville Jaguars",
	"KC": "Kansas City Chiefs", "LV": "Las Vegas Raiders", "LAC": "Los Angeles Chargers",
	"LAR": "Los Angeles Rams", "MIA": "Miami Dolphins", "MIN": "Minnesota Vikings",
	"NE": "New England Patriots", "NO": "New Orleans Saints", "NYG": "New York Giants",
	"NYJ": "New York Jets", "PHI": "Philadelphia Eagles", "PIT": "Pittsburgh Steelers",
	"SF": "San Francisco 49ers", "SEA": "Seattle Seahawks", "TB": "Tampa Bay Buccaneers",
	"TEN": "Tennessee Titans", "WAS": "Washington Commanders", "WSH": "Washington Commanders",
}

// NBATeams maps NBA team abbreviations to full franchise names.
var NBATeams = map[string]string{
	"ATL": "Atlanta Hawks", "BOS": "Boston Celtics", "BKN": "Brooklyn Nets",
	"CHA": "Charlotte Hornets", "CHI": "Chicago Bulls", "CLE": "Cleveland Cavaliers",
	"DAL": "Dallas Mavericks", "DEN": "Denver Nuggets", "DET": "Detroit Pistons",
	"GS": "Golden State Warriors", "GSW": "Golden State Warriors",
	"HOU": "Houston Rockets", "IND": "Indiana Pacers",
	"LAC": "Los Angeles Clippers", "LA": "Los Angeles Clippers",
	"LAL": "Los Angeles Lakers", "MEM": "Memphis Grizzlies",
	"MIA": "Miami Heat", "MIL": "Milwaukee Bucks", "MIN": "Minnesota Timberwolves",
	"NO": "New Orleans Pelicans", "NOP": "New Orleans Pelicans",
	"NY": "New York Knicks", "NYK": "New York Knicks",
	"OKC": "Oklahoma City Thunder", "ORL": "Orlando Magic",
	"PHI": "Philadelphia 76ers", "PHX": "Phoenix Suns", "POR": "Portland Trail Blazers",
	"SAC": "Sacramento Kings", "SA": "San Antonio Spurs", "SAS": "San Antonio Spurs",
	"TOR": "Toronto Raptors", "UTA": "Utah Jazz", "UTAH": "Utah Jazz",
	"WAS": "Washington Wizards", "WSH": "Washington Wizards",
}

// MLBTeamNames lists MLB teams. Only the full names are needed (the app
// never resolves MLB players), so there is no abbreviation table.
var MLBTeamNames = []string{
	"Arizona Diamondbacks", "Atlanta Braves", "Baltimore Orioles", "Boston Red Sox", "Chicago Cubs",
	"Chicago White Sox", "Cincinnati Reds", "Cleveland Guardians", "Colorado Rockies", "Detroit Tigers",
	"Houston Astros", "Kansas City Royals", "Los Angeles Angels", "Los Angeles Dodgers", "Miami Marlins",
	"Milwaukee Brewers", "Minnesota Twins", "New York Yankees", "New York Mets", "Oakland Athletics",
	"Philadelphia Phillies", "Pittsburgh Pirates", "San Diego Padres", "San Francisco Giants", "Seattle Mariners",
	"St. Louis Cardinals", "Tampa Bay Rays", "Texas Rangers", "Toronto Blue Jays", "Washington Nationals",
}

// AllTeamNames returns the sorted union of NFL, NBA and MLB full team
// names. Alias abbreviations collapse to a single entry.
func AllTeamNames() []string {
	seen := make(map[string]bool)
	var names []string

	add := func(name string) {
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}

	for _, name := range NFLTeams {
		add(name)
	}
	for _, name := range NBATeams {
		add(name)
	}
	for _, name := range MLBTeamNames {
		add(name)
	}

	sort.Strings(names)
	return names
}
