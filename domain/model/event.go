package model

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/multierr"
)

// ScaleEvent is a scale-out/scale-in notification for an Auto Scaling group.
type ScaleEvent struct {
	Region      string    `json:"region"`
	GroupName   string    `json:"groupName"`
	Description string    `json:"description,omitempty"`
	SubnetID    string    `json:"subnetId"`
	DetailType  string    `json:"detailType,omitempty"`
	InstanceID  string    `json:"instanceId,omitempty"`
	Time        time.Time `json:"time,omitempty"`
}

// Validate reports every missing required field in one error wrapping ErrEventInvalid.
func (e *ScaleEvent) Validate() error {
	if e == nil {
		return fmt.Errorf("%w: event is nil", ErrEventInvalid)
	}
	var err error
	if strings.TrimSpace(e.Region) == "" {
		err = multierr.Append(err, fmt.Errorf("region is required"))
	}
	if strings.TrimSpace(e.GroupName) == "" {
		err = multierr.Append(err, fmt.Errorf("AutoScalingGroupName is required"))
	}
	if strings.TrimSpace(e.SubnetID) == "" {
		err = multierr.Append(err, fmt.Errorf("subnet ID is required"))
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEventInvalid, err)
	}
	return nil
}
