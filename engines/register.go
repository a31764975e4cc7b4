package engines

import "github.com/erraggy/oascodec/validation"

func init() {
	validation.Register(NameKin, Kin())
	validation.Register(NameLibOpenAPI, LibOpenAPI())
}
