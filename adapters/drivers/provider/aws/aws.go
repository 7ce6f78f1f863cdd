package aws

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/autoscaling"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/route53"
	providerdrv "github.com/kompox/asgdns/adapters/drivers/provider"
)

// Provider settings keys.
const (
	SettingRegion      = "AWS_REGION"
	SettingProfile     = "AWS_PROFILE"
	SettingMaxAttempts = "AWS_MAX_ATTEMPTS"
)

// ec2API is the subset of the EC2 client used by the driver.
type ec2API interface {
	DescribeSubnets(ctx context.Context, params *ec2.DescribeSubnetsInput, optFns ...func(*ec2.Options)) (*ec2.DescribeSubnetsOutput, error)
	DescribeInstances(ctx context.Context, params *ec2.DescribeInstancesInput, optFns ...func(*ec2.Options)) (*ec2.DescribeInstancesOutput, error)
}

// autoscalingAPI is the subset of the Auto Scaling client used by the driver.
type autoscalingAPI interface {
	DescribeAutoScalingGroups(ctx context.Context, params *autoscaling.DescribeAutoScalingGroupsInput, optFns ...func(*autoscaling.Options)) (*autoscaling.DescribeAutoScalingGroupsOutput, error)
}

// route53API is the subset of the Route 53 client used by the driver.
type route53API interface {
	ListHostedZones(ctx context.Context, params *route53.ListHostedZonesInput, optFns ...func(*route53.Options)) (*route53.ListHostedZonesOutput, error)
	GetHostedZone(ctx context.Context, params *route53.GetHostedZoneInput, optFns ...func(*route53.Options)) (*route53.GetHostedZoneOutput, error)
	CreateHostedZone(ctx context.Context, params *route53.CreateHostedZoneInput, optFns ...func(*route53.Options)) (*route53.CreateHostedZoneOutput, error)
	ListResourceRecordSets(ctx context.Context, params *route53.ListResourceRecordSetsInput, optFns ...func(*route53.Options)) (*route53.ListResourceRecordSetsOutput, error)
	ChangeResourceRecordSets(ctx context.Context, params *route53.ChangeResourceRecordSetsInput, optFns ...func(*route53.Options)) (*route53.ChangeResourceRecordSetsOutput, error)
}

// driver implements the AWS provider driver on EC2, Auto Scaling and Route 53.
type driver struct {
	ec2     ec2API
	asg     autoscalingAPI
	route53 route53API
	region  string
}

// ID returns the provider identifier.
func (d *driver) ID() string { return "aws" }

// init registers the AWS driver.
func init() {
	providerdrv.Register("aws", func(ctx context.Context, settings map[string]string) (providerdrv.Driver, error) {
		get := func(k string) string {
			if settings == nil {
				return ""
			}
			return strings.TrimSpace(settings[k])
		}

		var opts []func(*config.LoadOptions) error
		if region := get(SettingRegion); region != "" {
			opts = append(opts, config.WithRegion(region))
		}
		if profile := get(SettingProfile); profile != "" {
			opts = append(opts, config.WithSharedConfigProfile(profile))
		}
		if v := get(SettingMaxAttempts); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n < 1 {
				return nil, fmt.Errorf("%s must be a positive integer, got %q", SettingMaxAttempts, v)
			}
			opts = append(opts, config.WithRetryMaxAttempts(n))
		}

		cfg, err := config.LoadDefaultConfig(ctx, opts...)
		if err != nil {
			return nil, fmt.Errorf("load AWS config: %w", err)
		}
		if cfg.Region == "" {
			return nil, fmt.Errorf("missing required AWS settings: %s", SettingRegion)
		}
		return newDriver(cfg), nil
	})
}

// newDriver builds a driver with clients from cfg. Clients live as long as the
// driver, which callers scope to a single invocation.
func newDriver(cfg aws.Config) *driver {
	return &driver{
		ec2:     ec2.NewFromConfig(cfg),
		asg:     autoscaling.NewFromConfig(cfg),
		route53: route53.NewFromConfig(cfg),
		region:  cfg.Region,
	}
}
