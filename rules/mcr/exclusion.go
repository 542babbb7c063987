package mcr

// excludes 成立后不再计的番种
var excludes = map[string][]string{
	"big_four_winds":              {"big_three_winds", "little_four_winds", "all_pungs", "prevalent_wind", "seat_wind", "pung_of_terminals_or_honors"},
	"big_three_dragons":           {"little_three_dragons", "two_dragon_pungs", "dragon_pung"},
	"all_green":                   {"half_flush", "full_flush"},
	"nine_gates":                  {"full_flush", "concealed_hand", "fully_concealed_hand", "pung_of_terminals_or_honors", "no_honors"},
	"four_kongs":                  {"three_kongs", "two_melded_kongs", "melded_kong", "concealed_kong", "all_pungs", "single_wait"},
	"seven_shifted_pairs":         {"seven_pairs", "full_flush", "concealed_hand", "single_wait", "no_honors"},
	"thirteen_orphans":            {"all_types", "all_terminals_and_honors", "concealed_hand", "single_wait"},
	"all_terminals":               {"all_terminals_and_honors", "all_pungs", "outside_hand", "pung_of_terminals_or_honors", "no_honors", "double_pung"},
	"little_four_winds":           {"big_three_winds", "pung_of_terminals_or_honors"},
	"little_three_dragons":        {"two_dragon_pungs", "dragon_pung"},
	"all_honors":                  {"all_terminals_and_honors", "all_pungs", "outside_hand", "pung_of_terminals_or_honors"},
	"four_concealed_pungs":        {"three_concealed_pungs", "two_concealed_pungs", "all_pungs", "concealed_hand"},
	"pure_terminal_chows":         {"full_flush", "all_chows", "pure_double_chow", "two_terminal_chows", "pure_straight"},
	"quadruple_chow":              {"pure_triple_chow", "pure_double_chow", "tile_hog"},
	"four_pure_shifted_pungs":     {"pure_shifted_pungs", "all_pungs"},
	"four_pure_shifted_chows":     {"pure_shifted_chows"},
	"three_kongs":                 {"two_melded_kongs", "melded_kong", "concealed_kong"},
	"all_terminals_and_honors":    {"all_pungs", "outside_hand", "pung_of_terminals_or_honors"},
	"seven_pairs":                 {"concealed_hand", "single_wait"},
	"all_even_pungs":              {"all_pungs", "all_simples", "no_honors"},
	"full_flush":                  {"no_honors", "one_voided_suit"},
	"pure_triple_chow":            {"pure_double_chow"},
	"upper_tiles":                 {"upper_four", "no_honors"},
	"middle_tiles":                {"all_simples", "no_honors"},
	"lower_tiles":                 {"lower_four", "no_honors"},
	"pure_straight":               {"short_straight", "two_terminal_chows"},
	"three_suited_terminal_chows": {"all_chows", "mixed_double_chow", "two_terminal_chows", "no_honors"},
	"all_fives":                   {"all_simples", "no_honors"},
	"upper_four":                  {"no_honors"},
	"lower_four":                  {"no_honors"},
	"big_three_winds":             {"pung_of_terminals_or_honors"},
	"reversible_tiles":            {"one_voided_suit"},
	"mixed_triple_chow":           {"mixed_double_chow"},
	"last_tile_draw":              {"self_drawn"},
	"out_with_replacement_tile":   {"self_drawn"},
	"robbing_the_kong":            {"last_tile"},
	"melded_hand":                 {"single_wait"},
	"two_dragon_pungs":            {"dragon_pung"},
	"fully_concealed_hand":        {"self_drawn", "concealed_hand"},
	"all_chows":                   {"no_honors"},
	"all_simples":                 {"no_honors"},
	"two_melded_kongs":            {"melded_kong"},
	"triple_pung":                 {"double_pung"},
}

// exclude 按成立的番种去掉被包含的番种
func exclude(t *tally) {
	var drop []string
	for name := range t.times {
		drop = append(drop, excludes[name]...)
	}
	for _, name := range drop {
		delete(t.times, name)
	}
}
