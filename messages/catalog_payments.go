package messages

func m(tag string, p Presence) Slot { return Slot{Tag: tag, Presence: p} }
func seq(tag string, p Presence, sequence string) Slot {
	return Slot{Tag: tag, Presence: p, Sequence: sequence}
}
func rep(tag string, min, max int, sequence string) Slot {
	return Slot{Tag: tag, Presence: Repetitive, Min: min, Max: max, Sequence: sequence}
}

func init() {
	// MT103 — Single Customer Credit Transfer.
	register(&Schema{
		MessageType: "103",
		Slots: []Slot{
			m("20", Mandatory),
			m("23B", Mandatory),
			rep("23E", 0, 3, ""),
			m("26T", Optional),
			m("32A", Mandatory),
			m("33B", Optional),
			m("36", Optional),
			m("50", Mandatory),
			m("52", Optional),
			m("53", Optional),
			m("54", Optional),
			m("56", Optional),
			m("57", Optional),
			m("59", Mandatory),
			m("70", Optional),
			m("71A", Mandatory),
			m("71F", Optional),
			m("71G", Optional),
			m("72", Optional),
			m("77B", Optional),
		},
		Conditionals: []Conditional{
			{
				Code:      "C1",
				Narrative: "if field 33B is present, 36 (exchange rate) is required",
				Check: func(l FieldLookup) (bool, []string) {
					if _, ok := l.Field("33B"); !ok {
						return false, nil
					}
					_, ok := l.Field("36")
					return !ok, []string{"33B", "36"}
				},
			},
			{
				Code:      "C2",
				Narrative: "71F and 71G currency must match 32A's currency when present",
				Check: func(l FieldLookup) (bool, []string) {
					main, ok := l.Field("32A")
					if !ok {
						return false, nil
					}
					base := currencyOf(main)
					for _, tag := range []string{"71F", "71G"} {
						if f, ok := l.Field(tag); ok && currencyOf(f) != base {
							return true, []string{"32A", tag}
						}
					}
					return false, nil
				},
			},
		},
	})

	// MT102 — Multiple Customer Credit Transfer: one settlement header plus
	// a repeating sequence of individual transactions.
	register(&Schema{
		MessageType: "102",
		Slots: []Slot{
			m("20", Mandatory),
			m("23B", Mandatory),
			m("50", Mandatory),
			m("52", Optional),
			m("71A", Optional),
			m("36", Optional),

			seq("21", Mandatory, "B"),
			seq("23E", Optional, "B"),
			seq("32B", Mandatory, "B"),
			seq("50", Optional, "B"),
			seq("57", Optional, "B"),
			seq("59", Mandatory, "B"),
			seq("70", Optional, "B"),
			seq("71A", Mandatory, "B"),
			seq("33B", Optional, "B"),

			m("32A", Mandatory),
			m("19", Optional),
			m("71G", Optional),
		},
		Sequences: []Sequence{
			{ID: "B", FirstTag: "21", Min: 1, Max: 0},
		},
	})

	// MT200 — Financial Institution Transfer for its Own Account.
	register(&Schema{
		MessageType: "200",
		Slots: []Slot{
			m("20", Mandatory),
			m("32A", Mandatory),
			m("53", Optional),
			m("56", Optional),
			m("57", Optional),
			m("72", Optional),
		},
	})

	// MT202 — General Financial Institution Transfer.
	register(&Schema{
		MessageType: "202",
		Slots: []Slot{
			m("20", Mandatory),
			m("21", Mandatory),
			m("32A", Mandatory),
			m("52", Optional),
			m("53", Optional),
			m("54", Optional),
			m("56", Optional),
			m("57", Optional),
			m("58", Mandatory),
			m("72", Optional),
		},
	})

	// MT202COV — General Financial Institution Transfer, Cover Payment:
	// sequence A (the institution-to-institution leg, same shape as MT202)
	// plus sequence B (the underlying customer credit transfer).
	register(&Schema{
		MessageType: "202COV",
		Slots: []Slot{
			seq("20", Mandatory, "A"),
			seq("21", Mandatory, "A"),
			seq("32A", Mandatory, "A"),
			seq("52", Optional, "A"),
			seq("56", Optional, "A"),
			seq("57", Optional, "A"),
			seq("58", Mandatory, "A"),

			seq("50", Mandatory, "B"),
			seq("52", Optional, "B"),
			seq("56", Optional, "B"),
			seq("57", Optional, "B"),
			seq("59", Mandatory, "B"),
			seq("70", Optional, "B"),
			seq("72", Optional, "B"),
			seq("33B", Optional, "B"),
		},
		Sequences: []Sequence{
			{ID: "A", FirstTag: "20", Min: 1, Max: 1},
			{ID: "B", FirstTag: "50", Min: 1, Max: 1},
		},
	})

	// MT205 — Financial Institution Transfer Execution (receiver-initiated
	// variant of MT202).
	register(&Schema{
		MessageType: "205",
		Slots: []Slot{
			m("20", Mandatory),
			m("21", Mandatory),
			m("32A", Mandatory),
			m("52", Optional),
			m("53", Optional),
			m("56", Optional),
			m("57", Optional),
			m("58", Mandatory),
			m("72", Optional),
		},
	})

	register(&Schema{
		MessageType: "205COV",
		Slots: []Slot{
			seq("20", Mandatory, "A"),
			seq("21", Mandatory, "A"),
			seq("32A", Mandatory, "A"),
			seq("52", Optional, "A"),
			seq("56", Optional, "A"),
			seq("57", Optional, "A"),
			seq("58", Mandatory, "A"),

			seq("50", Mandatory, "B"),
			seq("52", Optional, "B"),
			seq("56", Optional, "B"),
			seq("57", Optional, "B"),
			seq("59", Mandatory, "B"),
			seq("70", Optional, "B"),
			seq("72", Optional, "B"),
		},
		Sequences: []Sequence{
			{ID: "A", FirstTag: "20", Min: 1, Max: 1},
			{ID: "B", FirstTag: "50", Min: 1, Max: 1},
		},
	})

	// MT101 — Request for Transfer: sequence A (instructing-party-level
	// defaults) plus a repeating sequence B, one iteration per transaction.
	register(&Schema{
		MessageType: "101",
		Slots: []Slot{
			m("20", Mandatory),
			m("28D", Mandatory),
			m("50", Optional),
			m("52", Optional),

			seq("21", Mandatory, "B"),
			seq("23E", Optional, "B"),
			seq("32B", Mandatory, "B"),
			seq("50", Optional, "B"),
			seq("56", Optional, "B"),
			seq("57", Optional, "B"),
			seq("59", Mandatory, "B"),
			seq("70", Optional, "B"),
			seq("71A", Mandatory, "B"),
			seq("36", Optional, "B"),
			seq("33B", Optional, "B"),
		},
		Sequences: []Sequence{
			{ID: "B", FirstTag: "21", Min: 1, Max: 0},
		},
	})

	// MT104 — Direct Debit and Request for Debit Transfer: sequence A
	// (instruction-level header) plus a repeating sequence B, one per debit
	// transaction.
	register(&Schema{
		MessageType: "104",
		Slots: []Slot{
			m("20", Mandatory),
			m("23E", Optional),
			m("50", Optional),
			m("52", Optional),
			m("71A", Optional),

			seq("21", Mandatory, "B"),
			seq("23E", Optional, "B"),
			seq("32B", Mandatory, "B"),
			seq("50", Mandatory, "B"),
			seq("52", Optional, "B"),
			seq("57", Optional, "B"),
			seq("59", Mandatory, "B"),
			seq("70", Optional, "B"),
			seq("71A", Optional, "B"),
			seq("71F", Optional, "B"),
			seq("71G", Optional, "B"),
			seq("33B", Optional, "B"),

			m("32A", Mandatory),
			m("19", Optional),
			m("71F", Optional),
			m("71G", Optional),
			m("53", Optional),
		},
		Sequences: []Sequence{
			{ID: "B", FirstTag: "21", Min: 1, Max: 0},
		},
	})

	// MT107 — General Direct Debit Message: same shape as MT104.
	register(&Schema{
		MessageType: "107",
		Slots: []Slot{
			m("20", Mandatory),
			m("23E", Optional),
			m("50", Optional),
			m("52", Optional),
			m("71A", Optional),

			seq("21", Mandatory, "B"),
			seq("23E", Optional, "B"),
			seq("32B", Mandatory, "B"),
			seq("50", Mandatory, "B"),
			seq("52", Optional, "B"),
			seq("57", Optional, "B"),
			seq("59", Mandatory, "B"),
			seq("70", Optional, "B"),
			seq("71A", Optional, "B"),
			seq("33B", Optional, "B"),

			m("32A", Mandatory),
			m("19", Optional),
			m("71F", Optional),
			m("71G", Optional),
		},
		Sequences: []Sequence{
			{ID: "B", FirstTag: "21", Min: 1, Max: 0},
		},
	})

	// MT910 — Confirmation of Credit.
	register(&Schema{
		MessageType: "910",
		Slots: []Slot{
			m("20", Mandatory),
			m("21", Mandatory),
			m("25", Mandatory),
			m("32A", Mandatory),
			m("50", Optional),
			m("52", Optional),
			m("56", Optional),
			m("72", Optional),
		},
	})

	// MT210 — Notice to Receive: one or more expected-funds entries under
	// repeating sequence "A", each keyed by its own "21" (the tag whose
	// re-occurrence starts a new iteration, same convention as MT104/MT107's
	// sequence B).
	register(&Schema{
		MessageType: "210",
		Slots: []Slot{
			m("20", Mandatory),
			m("25", Optional),

			seq("21", Mandatory, "A"),
			seq("30", Mandatory, "A"),
			seq("32B", Mandatory, "A"),
			seq("50", Optional, "A"),
			seq("52", Optional, "A"),
			seq("56", Optional, "A"),
		},
		Sequences: []Sequence{
			{ID: "A", FirstTag: "21", Min: 1, Max: 0},
		},
	})
}
