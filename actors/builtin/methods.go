package builtin

import (
	"github.com/filecoin-project/go-state-types/abi"
)

const (
	MethodSend        = abi.MethodNum(0)
	MethodConstructor = abi.MethodNum(1)
)

var MethodsRewards = struct {
	Constructor       abi.MethodNum
	OnBlockInitialize abi.MethodNum
	OnBlockFinalize   abi.MethodNum
	SetSchedule       abi.MethodNum
	SetLockParams     abi.MethodNum
	SetMinerShare     abi.MethodNum
	Unlock            abi.MethodNum
	ForceUnlock       abi.MethodNum
	LockedBalance     abi.MethodNum
}{MethodConstructor, 2, 3, 4, 5, 6, 7, 8, 9}
