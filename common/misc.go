package common

import (
	"time"

	"github.com/fundwit/go-commons/types"
	"github.com/sony/sonyflake"
)

var idEpoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// NewIdWorker builds a sonyflake worker with a fixed machine id, so it does not depend on
// finding a private IPv4 address on the host.
func NewIdWorker(machineID uint16) *sonyflake.Sonyflake {
	return sonyflake.NewSonyflake(sonyflake.Settings{
		StartTime: idEpoch,
		MachineID: func() (uint16, error) { return machineID, nil },
	})
}

func NextId(idWorker *sonyflake.Sonyflake) types.ID {
	id, err := idWorker.NextID()
	if err != nil {
		panic(err)
	}
	return types.ID(id)
}
