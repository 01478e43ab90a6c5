package dataset_test

import (
	"strings"
	"testing"

	"github.com/AhmedKamal-41/dashboard-demo-streamlit/internal/domain/dataset"
	. "github.com/smartystreets/goconvey/convey"
)

func TestDecode(t *testing.T) {
	Convey("Given a well-formed champions CSV", t, func() {
		csvData := `country,year,state,region
England,2022,Manchester City,Premier League
Spain,2022,Real Madrid,La Liga
Germany,2021,Bayern Munich,Bundesliga
`

		Convey("When decoding", func() {
			records, err := dataset.Decode(strings.NewReader(csvData))

			Convey("Then every row becomes a record", func() {
				So(err, ShouldBeNil)
				So(records, ShouldHaveLength, 3)
				So(records[0].Country, ShouldEqual, "England")
				So(records[0].Year.Equal(2022), ShouldBeTrue)
				So(records[0].Club, ShouldEqual, "Manchester City")
				So(records[0].League, ShouldEqual, "Premier League")
			})
		})
	})

	Convey("Given headers with mixed case and stray whitespace", t, func() {
		csvData := ` Country , YEAR ,State, Region
Italy,2020,Juventus,Serie A
`

		Convey("When decoding", func() {
			records, err := dataset.Decode(strings.NewReader(csvData))

			Convey("Then column names are trimmed and lower-cased before matching", func() {
				So(err, ShouldBeNil)
				So(records, ShouldHaveLength, 1)
				So(records[0].Club, ShouldEqual, "Juventus")
			})
		})
	})

	Convey("Given extra columns beyond the required four", t, func() {
		csvData := `country,year,state,region,manager,stadium
France,2022,PSG,Ligue 1,Galtier,Parc des Princes
`

		Convey("When decoding", func() {
			records, err := dataset.Decode(strings.NewReader(csvData))

			Convey("Then the extras are ignored", func() {
				So(err, ShouldBeNil)
				So(records, ShouldHaveLength, 1)
				So(records[0].League, ShouldEqual, "Ligue 1")
			})
		})
	})

	Convey("Given unparseable year values", t, func() {
		csvData := `country,year,state,region
England,2022,Arsenal,Premier League
England,unknown,Chelsea,Premier League
England,,Liverpool,Premier League
England,2020.0,Leicester City,Premier League
`

		Convey("When decoding", func() {
			records, err := dataset.Decode(strings.NewReader(csvData))

			Convey("Then bad years become missing rather than failing the load", func() {
				So(err, ShouldBeNil)
				So(records, ShouldHaveLength, 4)
				So(records[0].Year.Valid, ShouldBeTrue)
				So(records[1].Year.Valid, ShouldBeFalse)
				So(records[2].Year.Valid, ShouldBeFalse)
				So(records[3].Year.Equal(2020), ShouldBeTrue)
			})

			Convey("And MissingYearCount reports them", func() {
				So(dataset.MissingYearCount(records), ShouldEqual, 2)
			})
		})
	})

	Convey("Given a CSV missing a required column", t, func() {
		csvData := `country,year,state
England,2022,Manchester City
`

		Convey("When decoding", func() {
			records, err := dataset.Decode(strings.NewReader(csvData))

			Convey("Then it fails fast with the missing column named", func() {
				So(records, ShouldBeNil)
				So(err, ShouldNotBeNil)
				So(err, ShouldWrap, dataset.ErrMissingColumn)
				So(err.Error(), ShouldContainSubstring, "region")
			})
		})
	})

	Convey("Given an empty input", t, func() {
		Convey("When decoding", func() {
			records, err := dataset.Decode(strings.NewReader(""))

			Convey("Then it reports an empty dataset", func() {
				So(records, ShouldBeNil)
				So(err, ShouldWrap, dataset.ErrEmptyDataset)
			})
		})
	})

	Convey("Given a header but no rows", t, func() {
		csvData := "country,year,state,region\n"

		Convey("When decoding", func() {
			records, err := dataset.Decode(strings.NewReader(csvData))

			Convey("Then the result is empty and valid", func() {
				So(err, ShouldBeNil)
				So(records, ShouldBeEmpty)
			})
		})
	})
}
