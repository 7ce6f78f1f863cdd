package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/kompox/asgdns/domain/model"
	"github.com/kompox/asgdns/internal/logging"
)

// describeInstancesBatch bounds the instance IDs sent per DescribeInstances call.
const describeInstancesBatch = 100

// SubnetNetwork returns the VPC ID of subnetID.
func (d *driver) SubnetNetwork(ctx context.Context, subnetID string) (vpcID string, err error) {
	ctx, cleanup := d.withMethodLogger(ctx, "SubnetNetwork")
	defer func() { cleanup(err) }()

	out, err := d.ec2.DescribeSubnets(ctx, &ec2.DescribeSubnetsInput{
		SubnetIds: []string{subnetID},
	})
	if err != nil {
		if isSubnetNotFound(err) {
			return "", fmt.Errorf("%w: %s: %w", model.ErrSubnetNotFound, subnetID, err)
		}
		return "", fmt.Errorf("describe subnet %s: %w", subnetID, err)
	}

	for _, s := range out.Subnets {
		if id := aws.ToString(s.SubnetId); id != "" && id != subnetID {
			continue
		}
		if vpc := aws.ToString(s.VpcId); vpc != "" {
			logging.FromContext(ctx).Debug(ctx, "subnet resolved", "subnet", subnetID, "vpc", vpc)
			return vpc, nil
		}
	}
	return "", fmt.Errorf("%w: %s", model.ErrSubnetNotFound, subnetID)
}

// runningPrivateAddresses returns the private IPv4 addresses of the instances
// in ids that are currently running. Instances without a private address are skipped.
func (d *driver) runningPrivateAddresses(ctx context.Context, ids []string) ([]string, error) {
	log := logging.FromContext(ctx)

	var addrs []string
	for start := 0; start < len(ids); start += describeInstancesBatch {
		end := min(start+describeInstancesBatch, len(ids))
		p := ec2.NewDescribeInstancesPaginator(d.ec2, &ec2.DescribeInstancesInput{
			InstanceIds: ids[start:end],
		})
		for p.HasMorePages() {
			page, err := p.NextPage(ctx)
			if err != nil {
				return nil, fmt.Errorf("describe instances: %w", err)
			}
			for _, r := range page.Reservations {
				for _, inst := range r.Instances {
					if inst.State == nil || inst.State.Name != ec2types.InstanceStateNameRunning {
						continue
					}
					addr := aws.ToString(inst.PrivateIpAddress)
					if addr == "" {
						log.Warn(ctx, "running instance has no private address", "instance", aws.ToString(inst.InstanceId))
						continue
					}
					addrs = append(addrs, addr)
				}
			}
		}
	}
	return addrs, nil
}
