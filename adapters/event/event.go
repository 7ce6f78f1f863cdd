// Package event decodes EventBridge Auto Scaling notifications into scale events.
package event

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	"github.com/kompox/asgdns/domain/model"
	"go.uber.org/multierr"
)

// SourceAutoScaling is the EventBridge source of Auto Scaling notifications.
const SourceAutoScaling = "aws.autoscaling"

// Detail types emitted by Auto Scaling for instance launch and termination.
const (
	DetailTypeLaunchSuccessful      = "EC2 Instance Launch Successful"
	DetailTypeLaunchUnsuccessful    = "EC2 Instance Launch Unsuccessful"
	DetailTypeTerminateSuccessful   = "EC2 Instance Terminate Successful"
	DetailTypeTerminateUnsuccessful = "EC2 Instance Terminate Unsuccessful"
)

// scaleDetail is the detail payload of an Auto Scaling instance notification.
type scaleDetail struct {
	AutoScalingGroupName string            `json:"AutoScalingGroupName"`
	Description          string            `json:"Description"`
	EC2InstanceID        string            `json:"EC2InstanceId"`
	Cause                string            `json:"Cause"`
	StatusCode           string            `json:"StatusCode"`
	Details              map[string]string `json:"Details"`
}

// detailSubnetID is the key under detail.Details carrying the instance subnet.
const detailSubnetID = "Subnet ID"

// Decode parses raw EventBridge JSON into a ScaleEvent.
func Decode(data []byte) (*model.ScaleEvent, error) {
	var ev events.CloudWatchEvent
	if err := json.Unmarshal(data, &ev); err != nil {
		return nil, fmt.Errorf("%w: decode event: %w", model.ErrEventInvalid, err)
	}
	return FromCloudWatchEvent(ev)
}

// FromCloudWatchEvent converts an EventBridge envelope into a ScaleEvent. All
// problems found are reported together.
func FromCloudWatchEvent(ev events.CloudWatchEvent) (*model.ScaleEvent, error) {
	var errs error
	if ev.Source != "" && ev.Source != SourceAutoScaling {
		errs = multierr.Append(errs, fmt.Errorf("unexpected source %q", ev.Source))
	}

	var d scaleDetail
	if len(ev.Detail) == 0 || string(ev.Detail) == "null" {
		errs = multierr.Append(errs, fmt.Errorf("detail is missing"))
	} else if err := json.Unmarshal(ev.Detail, &d); err != nil {
		errs = multierr.Append(errs, fmt.Errorf("decode detail: %w", err))
	}

	se := &model.ScaleEvent{
		Region:      strings.TrimSpace(ev.Region),
		GroupName:   strings.TrimSpace(d.AutoScalingGroupName),
		Description: d.Description,
		SubnetID:    strings.TrimSpace(d.Details[detailSubnetID]),
		DetailType:  ev.DetailType,
		InstanceID:  d.EC2InstanceID,
		Time:        ev.Time,
	}
	if errs != nil {
		return nil, multierr.Append(fmt.Errorf("%w: %w", model.ErrEventInvalid, errs), se.Validate())
	}
	if err := se.Validate(); err != nil {
		return nil, err
	}
	return se, nil
}
