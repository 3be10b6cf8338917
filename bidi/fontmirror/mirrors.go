package fontmirror

// mirrorPairs holds characters with property Bidi_Mirrored and their
// Bidi_Mirroring_Glyph, from BidiMirroring.txt. Only characters with a
// mirroring glyph which is a character of its own are listed.
var mirrorPairs = map[rune]rune{}

func init() {
	pairs := [...][2]rune{
		{0x0028, 0x0029}, // LEFT PARENTHESIS
		{0x003C, 0x003E}, // LESS-THAN SIGN
		{0x005B, 0x005D}, // LEFT SQUARE BRACKET
		{0x007B, 0x007D}, // LEFT CURLY BRACKET
		{0x00AB, 0x00BB}, // LEFT-POINTING DOUBLE ANGLE QUOTATION MARK
		{0x0F3A, 0x0F3B}, // TIBETAN MARK GUG RTAGS GYON
		{0x0F3C, 0x0F3D}, // TIBETAN MARK ANG KHANG GYON
		{0x169B, 0x169C}, // OGHAM FEATHER MARK
		{0x2039, 0x203A}, // SINGLE LEFT-POINTING ANGLE QUOTATION MARK
		{0x2045, 0x2046}, // LEFT SQUARE BRACKET WITH QUILL
		{0x207D, 0x207E}, // SUPERSCRIPT LEFT PARENTHESIS
		{0x208D, 0x208E}, // SUBSCRIPT LEFT PARENTHESIS
		{0x2208, 0x220B}, // ELEMENT OF
		{0x2209, 0x220C}, // NOT AN ELEMENT OF
		{0x220A, 0x220D}, // SMALL ELEMENT OF
		{0x2215, 0x29F5}, // DIVISION SLASH
		{0x223C, 0x223D}, // TILDE OPERATOR
		{0x2243, 0x22CD}, // ASYMPTOTICALLY EQUAL TO
		{0x2252, 0x2253}, // APPROXIMATELY EQUAL TO OR THE IMAGE OF
		{0x2254, 0x2255}, // COLON EQUALS
		{0x2264, 0x2265}, // LESS-THAN OR EQUAL TO
		{0x2266, 0x2267}, // LESS-THAN OVER EQUAL TO
		{0x2268, 0x2269}, // LESS-THAN BUT NOT EQUAL TO
		{0x226A, 0x226B}, // MUCH LESS-THAN
		{0x226E, 0x226F}, // NOT LESS-THAN
		{0x2270, 0x2271}, // NEITHER LESS-THAN NOR EQUAL TO
		{0x2272, 0x2273}, // LESS-THAN OR EQUIVALENT TO
		{0x2274, 0x2275}, // NEITHER LESS-THAN NOR EQUIVALENT TO
		{0x2276, 0x2277}, // LESS-THAN OR GREATER-THAN
		{0x2278, 0x2279}, // NEITHER LESS-THAN NOR GREATER-THAN
		{0x227A, 0x227B}, // PRECEDES
		{0x227C, 0x227D}, // PRECEDES OR EQUAL TO
		{0x227E, 0x227F}, // PRECEDES OR EQUIVALENT TO
		{0x2280, 0x2281}, // DOES NOT PRECEDE
		{0x2282, 0x2283}, // SUBSET OF
		{0x2284, 0x2285}, // NOT A SUBSET OF
		{0x2286, 0x2287}, // SUBSET OF OR EQUAL TO
		{0x2288, 0x2289}, // NEITHER A SUBSET OF NOR EQUAL TO
		{0x228A, 0x228B}, // SUBSET OF WITH NOT EQUAL TO
		{0x228F, 0x2290}, // SQUARE IMAGE OF
		{0x2291, 0x2292}, // SQUARE IMAGE OF OR EQUAL TO
		{0x2298, 0x29B8}, // CIRCLED DIVISION SLASH
		{0x22A2, 0x22A3}, // RIGHT TACK
		{0x22A6, 0x2ADE}, // ASSERTION
		{0x22B0, 0x22B1}, // PRECEDES UNDER RELATION
		{0x22B2, 0x22B3}, // NORMAL SUBGROUP OF
		{0x22B4, 0x22B5}, // NORMAL SUBGROUP OF OR EQUAL TO
		{0x22B6, 0x22B7}, // ORIGINAL OF
		{0x22C9, 0x22CA}, // LEFT NORMAL FACTOR SEMIDIRECT PRODUCT
		{0x22CB, 0x22CC}, // LEFT SEMIDIRECT PRODUCT
		{0x22D0, 0x22D1}, // DOUBLE SUBSET
		{0x22D6, 0x22D7}, // LESS-THAN WITH DOT
		{0x22D8, 0x22D9}, // VERY MUCH LESS-THAN
		{0x22DA, 0x22DB}, // LESS-THAN EQUAL TO OR GREATER-THAN
		{0x22DC, 0x22DD}, // EQUAL TO OR LESS-THAN
		{0x22DE, 0x22DF}, // EQUAL TO OR PRECEDES
		{0x22E0, 0x22E1}, // DOES NOT PRECEDE OR EQUAL
		{0x22E2, 0x22E3}, // NOT SQUARE IMAGE OF OR EQUAL TO
		{0x22E4, 0x22E5}, // SQUARE IMAGE OF OR NOT EQUAL TO
		{0x22E6, 0x22E7}, // LESS-THAN BUT NOT EQUIVALENT TO
		{0x22E8, 0x22E9}, // PRECEDES BUT NOT EQUIVALENT TO
		{0x22EA, 0x22EB}, // NOT NORMAL SUBGROUP OF
		{0x22EC, 0x22ED}, // NOT NORMAL SUBGROUP OF OR EQUAL TO
		{0x22F0, 0x22F1}, // UP RIGHT DIAGONAL ELLIPSIS
		{0x2308, 0x2309}, // LEFT CEILING
		{0x230A, 0x230B}, // LEFT FLOOR
		{0x2329, 0x232A}, // LEFT-POINTING ANGLE BRACKET
		{0x2768, 0x2769}, // MEDIUM LEFT PARENTHESIS ORNAMENT
		{0x276A, 0x276B}, // MEDIUM FLATTENED LEFT PARENTHESIS ORNAMENT
		{0x276C, 0x276D}, // MEDIUM LEFT-POINTING ANGLE BRACKET ORNAMENT
		{0x276E, 0x276F}, // HEAVY LEFT-POINTING ANGLE QUOTATION MARK ORNAMENT
		{0x2770, 0x2771}, // HEAVY LEFT-POINTING ANGLE BRACKET ORNAMENT
		{0x2772, 0x2773}, // LIGHT LEFT TORTOISE SHELL BRACKET ORNAMENT
		{0x2774, 0x2775}, // MEDIUM LEFT CURLY BRACKET ORNAMENT
		{0x27C3, 0x27C4}, // OPEN SUBSET
		{0x27C5, 0x27C6}, // LEFT S-SHAPED BAG DELIMITER
		{0x27C8, 0x27C9}, // REVERSE SOLIDUS PRECEDING SUBSET
		{0x27D5, 0x27D6}, // LEFT OUTER JOIN
		{0x27DD, 0x27DE}, // LONG RIGHT TACK
		{0x27E2, 0x27E3}, // WHITE CONCAVE-SIDED DIAMOND WITH LEFTWARDS TICK
		{0x27E4, 0x27E5}, // WHITE SQUARE WITH LEFTWARDS TICK
		{0x27E6, 0x27E7}, // MATHEMATICAL LEFT WHITE SQUARE BRACKET
		{0x27E8, 0x27E9}, // MATHEMATICAL LEFT ANGLE BRACKET
		{0x27EA, 0x27EB}, // MATHEMATICAL LEFT DOUBLE ANGLE BRACKET
		{0x27EC, 0x27ED}, // MATHEMATICAL LEFT WHITE TORTOISE SHELL BRACKET
		{0x27EE, 0x27EF}, // MATHEMATICAL LEFT FLATTENED PARENTHESIS
		{0x2983, 0x2984}, // LEFT WHITE CURLY BRACKET
		{0x2985, 0x2986}, // LEFT WHITE PARENTHESIS
		{0x2987, 0x2988}, // Z NOTATION LEFT IMAGE BRACKET
		{0x2989, 0x298A}, // Z NOTATION LEFT BINDING BRACKET
		{0x298B, 0x298C}, // LEFT SQUARE BRACKET WITH UNDERBAR
		{0x298D, 0x2990}, // LEFT SQUARE BRACKET WITH TICK IN TOP CORNER
		{0x298F, 0x298E}, // LEFT SQUARE BRACKET WITH TICK IN BOTTOM CORNER
		{0x2991, 0x2992}, // LEFT ANGLE BRACKET WITH DOT
		{0x2993, 0x2994}, // LEFT ARC LESS-THAN BRACKET
		{0x2995, 0x2996}, // DOUBLE LEFT ARC GREATER-THAN BRACKET
		{0x2997, 0x2998}, // LEFT BLACK TORTOISE SHELL BRACKET
		{0x29D8, 0x29D9}, // LEFT WIGGLY FENCE
		{0x29DA, 0x29DB}, // LEFT DOUBLE WIGGLY FENCE
		{0x29FC, 0x29FD}, // LEFT-POINTING CURVED ANGLE BRACKET
		{0x2E02, 0x2E03}, // LEFT SUBSTITUTION BRACKET
		{0x2E04, 0x2E05}, // LEFT DOTTED SUBSTITUTION BRACKET
		{0x2E09, 0x2E0A}, // LEFT TRANSPOSITION BRACKET
		{0x2E0C, 0x2E0D}, // LEFT RAISED OMISSION BRACKET
		{0x2E1C, 0x2E1D}, // LEFT LOW PARAPHRASE BRACKET
		{0x2E20, 0x2E21}, // LEFT VERTICAL BAR WITH QUILL
		{0x2E22, 0x2E23}, // TOP LEFT HALF BRACKET
		{0x2E24, 0x2E25}, // BOTTOM LEFT HALF BRACKET
		{0x2E26, 0x2E27}, // LEFT SIDEWAYS U BRACKET
		{0x2E28, 0x2E29}, // LEFT DOUBLE PARENTHESIS
		{0x3008, 0x3009}, // LEFT ANGLE BRACKET
		{0x300A, 0x300B}, // LEFT DOUBLE ANGLE BRACKET
		{0x300C, 0x300D}, // LEFT CORNER BRACKET
		{0x300E, 0x300F}, // LEFT WHITE CORNER BRACKET
		{0x3010, 0x3011}, // LEFT BLACK LENTICULAR BRACKET
		{0x3014, 0x3015}, // LEFT TORTOISE SHELL BRACKET
		{0x3016, 0x3017}, // LEFT WHITE LENTICULAR BRACKET
		{0x3018, 0x3019}, // LEFT WHITE TORTOISE SHELL BRACKET
		{0x301A, 0x301B}, // LEFT WHITE SQUARE BRACKET
		{0xFE59, 0xFE5A}, // SMALL LEFT PARENTHESIS
		{0xFE5B, 0xFE5C}, // SMALL LEFT CURLY BRACKET
		{0xFE5D, 0xFE5E}, // SMALL LEFT TORTOISE SHELL BRACKET
		{0xFE64, 0xFE65}, // SMALL LESS-THAN SIGN
		{0xFF08, 0xFF09}, // FULLWIDTH LEFT PARENTHESIS
		{0xFF1C, 0xFF1E}, // FULLWIDTH LESS-THAN SIGN
		{0xFF3B, 0xFF3D}, // FULLWIDTH LEFT SQUARE BRACKET
		{0xFF5B, 0xFF5D}, // FULLWIDTH LEFT CURLY BRACKET
		{0xFF5F, 0xFF60}, // FULLWIDTH LEFT WHITE PARENTHESIS
		{0xFF62, 0xFF63}, // HALFWIDTH LEFT CORNER BRACKET
	}
	for _, p := range pairs {
		mirrorPairs[p[0]] = p[1]
		mirrorPairs[p[1]] = p[0]
	}
}
