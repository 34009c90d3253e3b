package icon

import (
	"fmt"
	"testing"

	"github.com/mediagrab/mediagrab/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func TestGet(t *testing.T) {
	Convey("Given every registered icon", t, func() {
		for i := range icons {
			target := i

			Convey(fmt.Sprintf("It renders for each variant (icon %d)", target), func() {
				for _, variant := range AvailableVariants() {
					viper.Set(key.IconsVariant, variant)
					So(Get(target), ShouldNotBeEmpty)
				}
			})
		}

		Convey("It returns empty for an unknown variant", func() {
			viper.Set(key.IconsVariant, "")
			So(Get(Success), ShouldBeEmpty)
			So(Prefix(Success), ShouldBeEmpty)
		})

		Convey("Prefix appends a space", func() {
			viper.Set(key.IconsVariant, "plain")
			So(Prefix(Fail), ShouldEqual, "X ")
		})

		Convey("Unregistered icons render nothing", func() {
			viper.Set(key.IconsVariant, "plain")
			So(Get(Icon(-1)), ShouldBeEmpty)
		})
	})
}
