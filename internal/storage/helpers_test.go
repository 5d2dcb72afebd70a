package storage

import appConfig "github.com/ikkim/creme-backend/config"

func s3ConfigForTest(bucket, accessKey string) appConfig.S3Config {
	return appConfig.S3Config{
		Endpoint:        "https://account.r2.cloudflarestorage.com",
		Region:          "auto",
		Bucket:          bucket,
		AccessKeyID:     accessKey,
		SecretAccessKey: "secret",
		PublicURL:       "https://pub.example.com",
	}
}
