package aws

import (
	"errors"

	r53types "github.com/aws/aws-sdk-go-v2/service/route53/types"
	"github.com/aws/smithy-go"
)

// EC2 error codes have no typed errors in the SDK.
const (
	errCodeSubnetNotFound  = "InvalidSubnetID.NotFound"
	errCodeSubnetMalformed = "InvalidSubnetID.Malformed"
)

// apiErrorCode returns the service error code of err, or "" when err is not an API error.
func apiErrorCode(err error) string {
	var ae smithy.APIError
	if errors.As(err, &ae) {
		return ae.ErrorCode()
	}
	return ""
}

// isSubnetNotFound reports whether DescribeSubnets failed because the subnet does not exist.
func isSubnetNotFound(err error) bool {
	switch apiErrorCode(err) {
	case errCodeSubnetNotFound, errCodeSubnetMalformed:
		return true
	}
	return false
}

// isZoneConflict reports whether CreateHostedZone failed because an equivalent
// zone already exists: same caller reference (HostedZoneAlreadyExists) or same
// name already associated with the VPC (ConflictingDomainExists).
func isZoneConflict(err error) bool {
	var exists *r53types.HostedZoneAlreadyExists
	var conflicting *r53types.ConflictingDomainExists
	return errors.As(err, &exists) || errors.As(err, &conflicting)
}

// isRecordSetGone reports whether a DELETE change was rejected because the
// listed record set no longer exists as listed: removed or rewritten by a
// concurrent invocation between list and delete.
func isRecordSetGone(err error) bool {
	var icb *r53types.InvalidChangeBatch
	return errors.As(err, &icb)
}
