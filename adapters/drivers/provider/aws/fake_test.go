package aws

import (
	"context"
	"errors"

	"github.com/aws/aws-sdk-go-v2/service/autoscaling"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/route53"
)

// mockEC2 is a mock implementation for testing.
type mockEC2 struct {
	describeSubnetsFunc   func(ctx context.Context, in *ec2.DescribeSubnetsInput) (*ec2.DescribeSubnetsOutput, error)
	describeInstancesFunc func(ctx context.Context, in *ec2.DescribeInstancesInput) (*ec2.DescribeInstancesOutput, error)
}

func (m *mockEC2) DescribeSubnets(ctx context.Context, in *ec2.DescribeSubnetsInput, _ ...func(*ec2.Options)) (*ec2.DescribeSubnetsOutput, error) {
	if m.describeSubnetsFunc != nil {
		return m.describeSubnetsFunc(ctx, in)
	}
	return nil, errors.New("not implemented")
}

func (m *mockEC2) DescribeInstances(ctx context.Context, in *ec2.DescribeInstancesInput, _ ...func(*ec2.Options)) (*ec2.DescribeInstancesOutput, error) {
	if m.describeInstancesFunc != nil {
		return m.describeInstancesFunc(ctx, in)
	}
	return nil, errors.New("not implemented")
}

// mockAutoscaling is a mock implementation for testing.
type mockAutoscaling struct {
	describeGroupsFunc func(ctx context.Context, in *autoscaling.DescribeAutoScalingGroupsInput) (*autoscaling.DescribeAutoScalingGroupsOutput, error)
}

func (m *mockAutoscaling) DescribeAutoScalingGroups(ctx context.Context, in *autoscaling.DescribeAutoScalingGroupsInput, _ ...func(*autoscaling.Options)) (*autoscaling.DescribeAutoScalingGroupsOutput, error) {
	if m.describeGroupsFunc != nil {
		return m.describeGroupsFunc(ctx, in)
	}
	return nil, errors.New("not implemented")
}

// mockRoute53 is a mock implementation for testing.
type mockRoute53 struct {
	listHostedZonesFunc  func(ctx context.Context, in *route53.ListHostedZonesInput) (*route53.ListHostedZonesOutput, error)
	getHostedZoneFunc    func(ctx context.Context, in *route53.GetHostedZoneInput) (*route53.GetHostedZoneOutput, error)
	createHostedZoneFunc func(ctx context.Context, in *route53.CreateHostedZoneInput) (*route53.CreateHostedZoneOutput, error)
	listRecordSetsFunc   func(ctx context.Context, in *route53.ListResourceRecordSetsInput) (*route53.ListResourceRecordSetsOutput, error)
	changeRecordSetsFunc func(ctx context.Context, in *route53.ChangeResourceRecordSetsInput) (*route53.ChangeResourceRecordSetsOutput, error)
}

func (m *mockRoute53) ListHostedZones(ctx context.Context, in *route53.ListHostedZonesInput, _ ...func(*route53.Options)) (*route53.ListHostedZonesOutput, error) {
	if m.listHostedZonesFunc != nil {
		return m.listHostedZonesFunc(ctx, in)
	}
	return nil, errors.New("not implemented")
}

func (m *mockRoute53) GetHostedZone(ctx context.Context, in *route53.GetHostedZoneInput, _ ...func(*route53.Options)) (*route53.GetHostedZoneOutput, error) {
	if m.getHostedZoneFunc != nil {
		return m.getHostedZoneFunc(ctx, in)
	}
	return nil, errors.New("not implemented")
}

func (m *mockRoute53) CreateHostedZone(ctx context.Context, in *route53.CreateHostedZoneInput, _ ...func(*route53.Options)) (*route53.CreateHostedZoneOutput, error) {
	if m.createHostedZoneFunc != nil {
		return m.createHostedZoneFunc(ctx, in)
	}
	return nil, errors.New("not implemented")
}

func (m *mockRoute53) ListResourceRecordSets(ctx context.Context, in *route53.ListResourceRecordSetsInput, _ ...func(*route53.Options)) (*route53.ListResourceRecordSetsOutput, error) {
	if m.listRecordSetsFunc != nil {
		return m.listRecordSetsFunc(ctx, in)
	}
	return nil, errors.New("not implemented")
}

func (m *mockRoute53) ChangeResourceRecordSets(ctx context.Context, in *route53.ChangeResourceRecordSetsInput, _ ...func(*route53.Options)) (*route53.ChangeResourceRecordSetsOutput, error) {
	if m.changeRecordSetsFunc != nil {
		return m.changeRecordSetsFunc(ctx, in)
	}
	return nil, errors.New("not implemented")
}
