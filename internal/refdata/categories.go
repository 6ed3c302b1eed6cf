package refdata

// Position labels used across the resolver, the stat-category tables and
// the entry form.
const (
	PositionQB      = "Quarterback (QB)"
	PositionRB      = "Running Back (RB)"
	PositionWR      = "Wide Receiver (WR)"
	PositionK       = "Kicker (K)"
	PositionNBA     = "NBA Player"
	PositionMLB     = "MLB Player"
	PositionDefense = "NFL Defense Player"
)

// StatCategories maps a position label to the ordered list of prop stat
// categories offered for it.
var StatCategories = map[string][]string{
	PositionQB: {
		"rush_rec_tds", "passing_yds", "passing_tds", "rushing_yds", "rushing_att",
		"passing_att", "passing_comps", "passing_ints", "fantasy_points",
		"passing_and_rushing_yds", "passing_long", "period_1_passing_yds",
		"period_1_rushing_yds", "period_1_passing_tds", "period_1_2_passing_yds",
		"period_1_2_rushing_yds", "period_1_2_passing_tds", "fumbles_lost",
		"25_pass_yds_each_quarter", "passing_comp_pct", "period_first_attempt_completions",
	},
	PositionRB: {
		"rush_rec_tds", "rushing_yds", "receiving_yds", "receiving_rec", "rushing_att",
		"fantasy_points", "rush_rec_yds", "receiving_long", "rushing_long",
		"period_first_touchdown_scored", "rushing_tds", "receiving_tds",
		"period_1_receiving_yds", "period_1_rushing_yds", "period_1_receiving_rec",
		"period_1_rush_rec_tds", "period_1_2_receiving_yds", "period_1_2_rushing_yds",
		"period_1_2_receiving_rec", "period_1_2_rush_rec_tds", "fumbles_lost",
	},
	PositionWR: {
		"rush_rec_tds", "receiving_yds", "receiving_rec", "fantasy_points", "receiving_tgts",
		"receiving_long", "period_first_touchdown_scored", "period_1_receiving_yds",
		"period_1_receiving_rec", "period_1_rush_rec_tds", "period_1_2_receiving_yds",
		"period_1_2_receiving_rec", "period_1_2_rush_rec_tds", "fumbles_lost",
	},
	PositionK: {
		"field_goals_made", "extra_points_made", "kicking_points",
	},
	PositionNBA: {
		"points", "three_points_made", "rebounds", "assists", "pts_rebs_asts", "rebs_asts",
		"pts_rebs", "pts_asts", "double_doubles", "triple_doubles", "period_1_points",
		"period_1_rebounds", "period_1_assists", "period_1_three_points_made", "period_1_pts_rebs_asts",
		"fantasy_points", "turnovers", "steals", "free_throws_made", "period_1_2_points",
		"period_1_2_three_points_made", "period_1_2_assists", "period_1_2_pts_rebs_asts",
		"period_first_fg_attempt", "period_first_three_attempt", "period_1_first_5_min_pra",
		"period_1_first_5_min_pts", "offensive_rebounds",
	},
	PositionMLB: {
		"strikeouts", "fantasy_points", "pitch_outs", "hits_allowed", "runs_allowed",
		"walks_allowed", "period_1_strikeouts", "period_1_total_runs_allowed", "period_1_pitch_count",
		"period_1_batters_faced", "period_1_hits_allowed", "period_1_2_3_total_runs_allowed",
		"period_first_pitch_of_game_velocity",
	},
	PositionDefense: {
		"sacks", "tackles_and_assists", "assists", "tackles",
	},
}
