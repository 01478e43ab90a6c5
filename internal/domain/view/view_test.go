package view_test

import (
	"testing"

	"github.com/AhmedKamal-41/dashboard-demo-streamlit/internal/domain/model"
	"github.com/AhmedKamal-41/dashboard-demo-streamlit/internal/domain/view"
	. "github.com/smartystreets/goconvey/convey"
)

func rec(country string, year int, club, league string) model.ChampionRecord {
	return model.ChampionRecord{Country: country, Year: model.NewYear(year), Club: club, League: league}
}

func recNoYear(country, club, league string) model.ChampionRecord {
	return model.ChampionRecord{Country: country, Year: model.MissingYear(), Club: club, League: league}
}

// withTitles builds count records for a club so the dataset has a known
// per-club title total.
func withTitles(club string, titles int) []model.ChampionRecord {
	out := make([]model.ChampionRecord, 0, titles)
	for i := 0; i < titles; i++ {
		out = append(out, rec("Spain", 2000+i, club, "La Liga"))
	}
	return out
}

func TestYears(t *testing.T) {
	Convey("Given records across several seasons", t, func() {
		records := []model.ChampionRecord{
			rec("Italy", 2020, "Juventus", "Serie A"),
			rec("Italy", 2022, "AC Milan", "Serie A"),
			rec("Spain", 2021, "Atletico Madrid", "La Liga"),
			rec("Spain", 2022, "Real Madrid", "La Liga"),
			recNoYear("France", "PSG", "Ligue 1"),
		}

		Convey("When listing the distinct years", func() {
			years := view.Years(records)

			Convey("Then they are deduplicated, descending, and skip missing years", func() {
				So(years, ShouldResemble, []int{2022, 2021, 2020})
			})
		})
	})
}

func TestYearSlice(t *testing.T) {
	Convey("Given records across several seasons", t, func() {
		records := []model.ChampionRecord{
			rec("Spain", 2022, "Real Madrid", "La Liga"),
			rec("Italy", 2022, "AC Milan", "Serie A"),
			rec("Germany", 2022, "Bayern Munich", "Bundesliga"),
			rec("Italy", 2021, "Inter Milan", "Serie A"),
		}

		Convey("When slicing a year that exists", func() {
			slice := view.YearSlice(records, 2022)

			Convey("Then it contains exactly that year's rows, sorted by club", func() {
				So(slice, ShouldHaveLength, 3)
				So(slice[0].Club, ShouldEqual, "AC Milan")
				So(slice[1].Club, ShouldEqual, "Bayern Munich")
				So(slice[2].Club, ShouldEqual, "Real Madrid")
				for _, r := range slice {
					So(r.Year.Equal(2022), ShouldBeTrue)
				}
			})
		})

		Convey("When slicing a year not present", func() {
			slice := view.YearSlice(records, 1999)

			Convey("Then the result is empty", func() {
				So(slice, ShouldBeEmpty)
			})
		})
	})
}

func TestTopClubs(t *testing.T) {
	Convey("Given clubs with title totals A:5 B:3 C:3 D:1", t, func() {
		var records []model.ChampionRecord
		records = append(records, withTitles("A", 5)...)
		records = append(records, withTitles("B", 3)...)
		records = append(records, withTitles("C", 3)...)
		records = append(records, withTitles("D", 1)...)

		Convey("When asking for the top 2", func() {
			top := view.TopClubs(records, 2)

			Convey("Then the most titled club leads and counts never increase", func() {
				So(top, ShouldHaveLength, 2)
				So(top[0], ShouldEqual, "A")
				// The B/C tie has no contractual order; only membership is asserted.
				So(top[1], ShouldBeIn, "B", "C")
			})

			Convey("And repeated computations give the same order", func() {
				So(view.TopClubs(records, 2), ShouldResemble, top)
			})
		})

		Convey("When asking for exactly the distinct club count", func() {
			top := view.TopClubs(records, 4)

			Convey("Then every club is returned", func() {
				So(top, ShouldHaveLength, 4)
				So(top[0], ShouldEqual, "A")
				So(top[3], ShouldEqual, "D")
			})
		})

		Convey("When asking for more clubs than exist", func() {
			top := view.TopClubs(records, 10)

			Convey("Then all clubs are returned", func() {
				So(top, ShouldHaveLength, 4)
			})
		})

		Convey("When asking for zero or negative", func() {
			So(view.TopClubs(records, 0), ShouldBeEmpty)
			So(view.TopClubs(records, -1), ShouldBeEmpty)
		})
	})
}

func TestClampTopN(t *testing.T) {
	Convey("Given the slider bounds [5, min(50, distinct)]", t, func() {
		Convey("Then values inside the range pass through", func() {
			So(view.ClampTopN(20, 40, 5, 50), ShouldEqual, 20)
		})

		Convey("Then values above the distinct count clamp down", func() {
			So(view.ClampTopN(45, 30, 5, 50), ShouldEqual, 30)
		})

		Convey("Then values above the fixed maximum clamp to it", func() {
			So(view.ClampTopN(80, 200, 5, 50), ShouldEqual, 50)
		})

		Convey("Then values below the minimum clamp up", func() {
			So(view.ClampTopN(1, 40, 5, 50), ShouldEqual, 5)
		})

		Convey("Then the minimum wins when fewer clubs than the minimum exist", func() {
			So(view.ClampTopN(3, 3, 5, 50), ShouldEqual, 5)
		})
	})
}

func TestCanonicalCountry(t *testing.T) {
	Convey("Given the country remap table", t, func() {
		Convey("Then aliases map to canonical names", func() {
			So(view.CanonicalCountry("England"), ShouldEqual, "United Kingdom")
			So(view.CanonicalCountry("UK"), ShouldEqual, "United Kingdom")
			So(view.CanonicalCountry("Czech Republic"), ShouldEqual, "Czechia")
			So(view.CanonicalCountry("Russia"), ShouldEqual, "Russian Federation")
		})

		Convey("Then canonical names pass through and the remap is idempotent", func() {
			So(view.CanonicalCountry("United Kingdom"), ShouldEqual, "United Kingdom")
			So(view.CanonicalCountry("Germany"), ShouldEqual, "Germany")
			So(view.CanonicalCountry(view.CanonicalCountry("England")), ShouldEqual, "United Kingdom")
		})
	})
}

func TestTitlesByCountry(t *testing.T) {
	Convey("Given the UK/England worked example", t, func() {
		records := []model.ChampionRecord{
			rec("UK", 2021, "ClubA", "League1"),
			rec("England", 2022, "ClubB", "League1"),
			rec("Germany", 2022, "ClubC", "League2"),
		}

		Convey("When aggregating the 2022 slice", func() {
			titles := view.TitlesByCountry(view.YearSlice(records, 2022))

			Convey("Then England remaps to United Kingdom and 2021 is excluded", func() {
				So(titles, ShouldResemble, []view.CountryTitles{
					{Country: "Germany", Titles: 1},
					{Country: "United Kingdom", Titles: 1},
				})
			})
		})

		Convey("When aggregating an empty slice", func() {
			titles := view.TitlesByCountry(nil)

			Convey("Then the result is empty, not an error", func() {
				So(titles, ShouldBeEmpty)
			})
		})
	})
}

func TestTally(t *testing.T) {
	Convey("Given records spanning clubs and leagues", t, func() {
		records := []model.ChampionRecord{
			rec("England", 2020, "Liverpool", "Premier League"),
			rec("England", 2021, "Manchester City", "Premier League"),
			rec("England", 2022, "Manchester City", "Premier League"),
			rec("Germany", 2021, "Bayern Munich", "Bundesliga"),
			rec("Germany", 2022, "Bayern Munich", "Bundesliga"),
			recNoYear("France", "PSG", "Ligue 1"),
		}

		Convey("When computing the winners tally", func() {
			tally := view.Tally(records)

			Convey("Then group counts sum to the total row count", func() {
				total := 0
				for _, row := range tally {
					total += row.Titles
				}
				So(total, ShouldEqual, len(records))
			})

			Convey("Then rows sort by titles descending, club ascending", func() {
				So(tally[0].Club, ShouldEqual, "Bayern Munich")
				So(tally[0].Titles, ShouldEqual, 2)
				So(tally[1].Club, ShouldEqual, "Manchester City")
				So(tally[1].Titles, ShouldEqual, 2)
				So(tally[2].Titles, ShouldEqual, 1)
			})
		})

		Convey("When computing the bar ranking", func() {
			bars := view.BarRanking(records)

			Convey("Then titles never decrease along the slice", func() {
				for i := 1; i < len(bars); i++ {
					So(bars[i].Titles, ShouldBeGreaterThanOrEqualTo, bars[i-1].Titles)
				}
			})

			Convey("And every row keeps its league for coloring", func() {
				for _, row := range bars {
					So(row.League, ShouldNotBeBlank)
				}
			})
		})
	})
}

func TestHeatmapCells(t *testing.T) {
	Convey("Given records and a top-club restriction", t, func() {
		records := []model.ChampionRecord{
			rec("England", 2021, "Manchester City", "Premier League"),
			rec("England", 2022, "Manchester City", "Premier League"),
			rec("Germany", 2022, "Bayern Munich", "Bundesliga"),
			rec("France", 2022, "PSG", "Ligue 1"),
			recNoYear("Italy", "Manchester City", "Premier League"),
		}

		Convey("When computing cells for the top clubs only", func() {
			cells := view.HeatmapCells(records, []string{"Manchester City", "Bayern Munich"})

			Convey("Then excluded clubs and missing years are dropped", func() {
				So(cells, ShouldResemble, []view.HeatmapCell{
					{Year: 2022, Club: "Bayern Munich", Titles: 1},
					{Year: 2022, Club: "Manchester City", Titles: 1},
					{Year: 2021, Club: "Manchester City", Titles: 1},
				})
			})
		})

		Convey("When the club list is empty", func() {
			So(view.HeatmapCells(records, nil), ShouldBeEmpty)
		})
	})
}

func TestThemes(t *testing.T) {
	Convey("Given the color theme palette", t, func() {
		Convey("Then it has exactly ten entries", func() {
			So(view.Themes, ShouldHaveLength, 10)
		})

		Convey("Then the default is the first entry", func() {
			So(view.DefaultTheme(), ShouldEqual, view.Themes[0])
			So(view.DefaultTheme(), ShouldEqual, "blues")
		})

		Convey("Then validation accepts palette entries and rejects others", func() {
			So(view.ValidTheme("viridis"), ShouldBeTrue)
			So(view.ValidTheme("neon"), ShouldBeFalse)
			So(view.ValidTheme(""), ShouldBeFalse)
		})
	})
}
