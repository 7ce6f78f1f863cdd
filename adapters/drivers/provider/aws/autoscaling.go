package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/autoscaling"
	asgtypes "github.com/aws/aws-sdk-go-v2/service/autoscaling/types"
	"github.com/kompox/asgdns/internal/logging"
)

// GroupMemberAddresses returns the private addresses of InService members of
// groupName whose EC2 state is running. A group that does not exist, or has no
// such members, yields an empty list.
func (d *driver) GroupMemberAddresses(ctx context.Context, groupName string) (addrs []string, err error) {
	ctx, cleanup := d.withMethodLogger(ctx, "GroupMemberAddresses")
	defer func() { cleanup(err) }()
	log := logging.FromContext(ctx)

	var (
		found bool
		ids   []string
	)
	p := autoscaling.NewDescribeAutoScalingGroupsPaginator(d.asg, &autoscaling.DescribeAutoScalingGroupsInput{
		AutoScalingGroupNames: []string{groupName},
	})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("describe auto scaling group %s: %w", groupName, err)
		}
		for _, g := range page.AutoScalingGroups {
			if aws.ToString(g.AutoScalingGroupName) != groupName {
				continue
			}
			found = true
			for _, inst := range g.Instances {
				if inst.LifecycleState != asgtypes.LifecycleStateInService {
					continue
				}
				if id := aws.ToString(inst.InstanceId); id != "" {
					ids = append(ids, id)
				}
			}
		}
	}

	if !found {
		log.Info(ctx, "auto scaling group not found", "group", groupName)
		return nil, nil
	}
	if len(ids) == 0 {
		log.Info(ctx, "auto scaling group has no in-service instances", "group", groupName)
		return nil, nil
	}

	addrs, err = d.runningPrivateAddresses(ctx, ids)
	if err != nil {
		return nil, err
	}
	log.Debug(ctx, "group members resolved", "group", groupName, "in_service", len(ids), "running", len(addrs))
	return addrs, nil
}
