package artifact

import (
	"github.com/ezrec/asm2ms/translate"
)

var f = translate.From
