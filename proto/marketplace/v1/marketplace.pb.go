// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.11
// 	protoc        (unknown)
// source: marketplace/v1/marketplace.proto

package marketplacev1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	timestamppb "google.golang.org/protobuf/types/known/timestamppb"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type ListingStatus int32

const (
	ListingStatus_LISTING_STATUS_UNSPECIFIED      ListingStatus = 0
	ListingStatus_LISTING_STATUS_DRAFT            ListingStatus = 1
	ListingStatus_LISTING_STATUS_PENDING_APPROVAL ListingStatus = 2
	ListingStatus_LISTING_STATUS_AVAILABLE        ListingStatus = 3
	ListingStatus_LISTING_STATUS_ON_HOLD          ListingStatus = 4
	ListingStatus_LISTING_STATUS_SOLD             ListingStatus = 5
)

// Enum value maps for ListingStatus.
var (
	ListingStatus_name = map[int32]string{
		0: "LISTING_STATUS_UNSPECIFIED",
		1: "LISTING_STATUS_DRAFT",
		2: "LISTING_STATUS_PENDING_APPROVAL",
		3: "LISTING_STATUS_AVAILABLE",
		4: "LISTING_STATUS_ON_HOLD",
		5: "LISTING_STATUS_SOLD",
	}
	ListingStatus_value = map[string]int32{
		"LISTING_STATUS_UNSPECIFIED":      0,
		"LISTING_STATUS_DRAFT":            1,
		"LISTING_STATUS_PENDING_APPROVAL": 2,
		"LISTING_STATUS_AVAILABLE":        3,
		"LISTING_STATUS_ON_HOLD":          4,
		"LISTING_STATUS_SOLD":             5,
	}
)

func (x ListingStatus) Enum() *ListingStatus {
	p := new(ListingStatus)
	*p = x
	return p
}

func (x ListingStatus) String() string {
	return protoimpl.X.EnumStringOf(x.Descriptor(), protoreflect.EnumNumber(x))
}

func (ListingStatus) Descriptor() protoreflect.EnumDescriptor {
	return file_marketplace_v1_marketplace_proto_enumTypes[0].Descriptor()
}

func (ListingStatus) Type() protoreflect.EnumType {
	return &file_marketplace_v1_marketplace_proto_enumTypes[0]
}

func (x ListingStatus) Number() protoreflect.EnumNumber {
	return protoreflect.EnumNumber(x)
}

// Deprecated: Use ListingStatus.Descriptor instead.
func (ListingStatus) EnumDescriptor() ([]byte, []int) {
	return file_marketplace_v1_marketplace_proto_rawDescGZIP(), []int{0}
}

// Money is an exact rational amount; 19.99 is {1999, 100}.
type Money struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Numerator     int64                  `protobuf:"varint,1,opt,name=numerator,proto3" json:"numerator,omitempty"`
	Denominator   int64                  `protobuf:"varint,2,opt,name=denominator,proto3" json:"denominator,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Money) Reset() {
	*x = Money{}
	mi := &file_marketplace_v1_marketplace_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Money) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Money) ProtoMessage() {}

func (x *Money) ProtoReflect() protoreflect.Message {
	mi := &file_marketplace_v1_marketplace_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Money.ProtoReflect.Descriptor instead.
func (*Money) Descriptor() ([]byte, []int) {
	return file_marketplace_v1_marketplace_proto_rawDescGZIP(), []int{0}
}

func (x *Money) GetNumerator() int64 {
	if x != nil {
		return x.Numerator
	}
	return 0
}

func (x *Money) GetDenominator() int64 {
	if x != nil {
		return x.Denominator
	}
	return 0
}

type Listing struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	Id              string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Title           string                 `protobuf:"bytes,2,opt,name=title,proto3" json:"title,omitempty"`
	Category        string                 `protobuf:"bytes,3,opt,name=category,proto3" json:"category,omitempty"`
	Subcategory     string                 `protobuf:"bytes,4,opt,name=subcategory,proto3" json:"subcategory,omitempty"`
	Condition       string                 `protobuf:"bytes,5,opt,name=condition,proto3" json:"condition,omitempty"`
	Size            string                 `protobuf:"bytes,6,opt,name=size,proto3" json:"size,omitempty"`
	Price           *Money                 `protobuf:"bytes,7,opt,name=price,proto3" json:"price,omitempty"`
	Year            int64                  `protobuf:"varint,8,opt,name=year,proto3" json:"year,omitempty"`
	SellerId        string                 `protobuf:"bytes,9,opt,name=seller_id,json=sellerId,proto3" json:"seller_id,omitempty"`
	SellerVerified  bool                   `protobuf:"varint,10,opt,name=seller_verified,json=sellerVerified,proto3" json:"seller_verified,omitempty"`
	Featured        bool                   `protobuf:"varint,11,opt,name=featured,proto3" json:"featured,omitempty"`
	Untimed         bool                   `protobuf:"varint,12,opt,name=untimed,proto3" json:"untimed,omitempty"`
	MultibuyEnabled bool                   `protobuf:"varint,13,opt,name=multibuy_enabled,json=multibuyEnabled,proto3" json:"multibuy_enabled,omitempty"`
	Status          ListingStatus          `protobuf:"varint,14,opt,name=status,proto3,enum=marketplace.v1.ListingStatus" json:"status,omitempty"`
	PublicReleaseAt *timestamppb.Timestamp `protobuf:"bytes,15,opt,name=public_release_at,json=publicReleaseAt,proto3" json:"public_release_at,omitempty"`
	CreatedAt       *timestamppb.Timestamp `protobuf:"bytes,16,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt       *timestamppb.Timestamp `protobuf:"bytes,17,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	Views           int64                  `protobuf:"varint,18,opt,name=views,proto3" json:"views,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *Listing) Reset() {
	*x = Listing{}
	mi := &file_marketplace_v1_marketplace_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Listing) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Listing) ProtoMessage() {}

func (x *Listing) ProtoReflect() protoreflect.Message {
	mi := &file_marketplace_v1_marketplace_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Listing.ProtoReflect.Descriptor instead.
func (*Listing) Descriptor() ([]byte, []int) {
	return file_marketplace_v1_marketplace_proto_rawDescGZIP(), []int{1}
}

func (x *Listing) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Listing) GetTitle() string {
	if x != nil {
		return x.Title
	}
	return ""
}

func (x *Listing) GetCategory() string {
	if x != nil {
		return x.Category
	}
	return ""
}

func (x *Listing) GetSubcategory() string {
	if x != nil {
		return x.Subcategory
	}
	return ""
}

func (x *Listing) GetCondition() string {
	if x != nil {
		return x.Condition
	}
	return ""
}

func (x *Listing) GetSize() string {
	if x != nil {
		return x.Size
	}
	return ""
}

func (x *Listing) GetPrice() *Money {
	if x != nil {
		return x.Price
	}
	return nil
}

func (x *Listing) GetYear() int64 {
	if x != nil {
		return x.Year
	}
	return 0
}

func (x *Listing) GetSellerId() string {
	if x != nil {
		return x.SellerId
	}
	return ""
}

func (x *Listing) GetSellerVerified() bool {
	if x != nil {
		return x.SellerVerified
	}
	return false
}

func (x *Listing) GetFeatured() bool {
	if x != nil {
		return x.Featured
	}
	return false
}

func (x *Listing) GetUntimed() bool {
	if x != nil {
		return x.Untimed
	}
	return false
}

func (x *Listing) GetMultibuyEnabled() bool {
	if x != nil {
		return x.MultibuyEnabled
	}
	return false
}

func (x *Listing) GetStatus() ListingStatus {
	if x != nil {
		return x.Status
	}
	return ListingStatus_LISTING_STATUS_UNSPECIFIED
}

func (x *Listing) GetPublicReleaseAt() *timestamppb.Timestamp {
	if x != nil {
		return x.PublicReleaseAt
	}
	return nil
}

func (x *Listing) GetCreatedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.CreatedAt
	}
	return nil
}

func (x *Listing) GetUpdatedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.UpdatedAt
	}
	return nil
}

func (x *Listing) GetViews() int64 {
	if x != nil {
		return x.Views
	}
	return 0
}

type SearchListingsRequest struct {
	state        protoimpl.MessageState `protogen:"open.v1"`
	Query        string                 `protobuf:"bytes,1,opt,name=query,proto3" json:"query,omitempty"`
	Categories   []string               `protobuf:"bytes,2,rep,name=categories,proto3" json:"categories,omitempty"`
	Subcategory  string                 `protobuf:"bytes,3,opt,name=subcategory,proto3" json:"subcategory,omitempty"`
	Conditions   []string               `protobuf:"bytes,4,rep,name=conditions,proto3" json:"conditions,omitempty"`
	Sizes        []string               `protobuf:"bytes,5,rep,name=sizes,proto3" json:"sizes,omitempty"`
	SellerIds    []string               `protobuf:"bytes,6,rep,name=seller_ids,json=sellerIds,proto3" json:"seller_ids,omitempty"`
	MinPrice     *float64               `protobuf:"fixed64,7,opt,name=min_price,json=minPrice,proto3,oneof" json:"min_price,omitempty"`
	MaxPrice     *float64               `protobuf:"fixed64,8,opt,name=max_price,json=maxPrice,proto3,oneof" json:"max_price,omitempty"`
	MinYear      *int64                 `protobuf:"varint,9,opt,name=min_year,json=minYear,proto3,oneof" json:"min_year,omitempty"`
	MaxYear      *int64                 `protobuf:"varint,10,opt,name=max_year,json=maxYear,proto3,oneof" json:"max_year,omitempty"`
	VerifiedOnly bool                   `protobuf:"varint,11,opt,name=verified_only,json=verifiedOnly,proto3" json:"verified_only,omitempty"`
	Untimed      bool                   `protobuf:"varint,12,opt,name=untimed,proto3" json:"untimed,omitempty"`
	MultibuyOnly bool                   `protobuf:"varint,13,opt,name=multibuy_only,json=multibuyOnly,proto3" json:"multibuy_only,omitempty"`
	// One of: newest, price-asc, price-desc, year-asc, year-desc, views, title.
	Sort string `protobuf:"bytes,14,opt,name=sort,proto3" json:"sort,omitempty"`
	// Cursor: id of the previous page's last item.
	LastId string `protobuf:"bytes,15,opt,name=last_id,json=lastId,proto3" json:"last_id,omitempty"`
	// Privileged callers only.
	Statuses      []string `protobuf:"bytes,16,rep,name=statuses,proto3" json:"statuses,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SearchListingsRequest) Reset() {
	*x = SearchListingsRequest{}
	mi := &file_marketplace_v1_marketplace_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SearchListingsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SearchListingsRequest) ProtoMessage() {}

func (x *SearchListingsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_marketplace_v1_marketplace_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SearchListingsRequest.ProtoReflect.Descriptor instead.
func (*SearchListingsRequest) Descriptor() ([]byte, []int) {
	return file_marketplace_v1_marketplace_proto_rawDescGZIP(), []int{2}
}

func (x *SearchListingsRequest) GetQuery() string {
	if x != nil {
		return x.Query
	}
	return ""
}

func (x *SearchListingsRequest) GetCategories() []string {
	if x != nil {
		return x.Categories
	}
	return nil
}

func (x *SearchListingsRequest) GetSubcategory() string {
	if x != nil {
		return x.Subcategory
	}
	return ""
}

func (x *SearchListingsRequest) GetConditions() []string {
	if x != nil {
		return x.Conditions
	}
	return nil
}

func (x *SearchListingsRequest) GetSizes() []string {
	if x != nil {
		return x.Sizes
	}
	return nil
}

func (x *SearchListingsRequest) GetSellerIds() []string {
	if x != nil {
		return x.SellerIds
	}
	return nil
}

func (x *SearchListingsRequest) GetMinPrice() float64 {
	if x != nil && x.MinPrice != nil {
		return *x.MinPrice
	}
	return 0
}

func (x *SearchListingsRequest) GetMaxPrice() float64 {
	if x != nil && x.MaxPrice != nil {
		return *x.MaxPrice
	}
	return 0
}

func (x *SearchListingsRequest) GetMinYear() int64 {
	if x != nil && x.MinYear != nil {
		return *x.MinYear
	}
	return 0
}

func (x *SearchListingsRequest) GetMaxYear() int64 {
	if x != nil && x.MaxYear != nil {
		return *x.MaxYear
	}
	return 0
}

func (x *SearchListingsRequest) GetVerifiedOnly() bool {
	if x != nil {
		return x.VerifiedOnly
	}
	return false
}

func (x *SearchListingsRequest) GetUntimed() bool {
	if x != nil {
		return x.Untimed
	}
	return false
}

func (x *SearchListingsRequest) GetMultibuyOnly() bool {
	if x != nil {
		return x.MultibuyOnly
	}
	return false
}

func (x *SearchListingsRequest) GetSort() string {
	if x != nil {
		return x.Sort
	}
	return ""
}

func (x *SearchListingsRequest) GetLastId() string {
	if x != nil {
		return x.LastId
	}
	return ""
}

func (x *SearchListingsRequest) GetStatuses() []string {
	if x != nil {
		return x.Statuses
	}
	return nil
}

type SearchListingsReply struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Listings      []*Listing             `protobuf:"bytes,1,rep,name=listings,proto3" json:"listings,omitempty"`
	HasMore       bool                   `protobuf:"varint,2,opt,name=has_more,json=hasMore,proto3" json:"has_more,omitempty"`
	LastVisibleId string                 `protobuf:"bytes,3,opt,name=last_visible_id,json=lastVisibleId,proto3" json:"last_visible_id,omitempty"`
	TotalCount    *int64                 `protobuf:"varint,4,opt,name=total_count,json=totalCount,proto3,oneof" json:"total_count,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SearchListingsReply) Reset() {
	*x = SearchListingsReply{}
	mi := &file_marketplace_v1_marketplace_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SearchListingsReply) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SearchListingsReply) ProtoMessage() {}

func (x *SearchListingsReply) ProtoReflect() protoreflect.Message {
	mi := &file_marketplace_v1_marketplace_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SearchListingsReply.ProtoReflect.Descriptor instead.
func (*SearchListingsReply) Descriptor() ([]byte, []int) {
	return file_marketplace_v1_marketplace_proto_rawDescGZIP(), []int{3}
}

func (x *SearchListingsReply) GetListings() []*Listing {
	if x != nil {
		return x.Listings
	}
	return nil
}

func (x *SearchListingsReply) GetHasMore() bool {
	if x != nil {
		return x.HasMore
	}
	return false
}

func (x *SearchListingsReply) GetLastVisibleId() string {
	if x != nil {
		return x.LastVisibleId
	}
	return ""
}

func (x *SearchListingsReply) GetTotalCount() int64 {
	if x != nil && x.TotalCount != nil {
		return *x.TotalCount
	}
	return 0
}

type GetListingRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ListingId     string                 `protobuf:"bytes,1,opt,name=listing_id,json=listingId,proto3" json:"listing_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetListingRequest) Reset() {
	*x = GetListingRequest{}
	mi := &file_marketplace_v1_marketplace_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetListingRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetListingRequest) ProtoMessage() {}

func (x *GetListingRequest) ProtoReflect() protoreflect.Message {
	mi := &file_marketplace_v1_marketplace_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetListingRequest.ProtoReflect.Descriptor instead.
func (*GetListingRequest) Descriptor() ([]byte, []int) {
	return file_marketplace_v1_marketplace_proto_rawDescGZIP(), []int{4}
}

func (x *GetListingRequest) GetListingId() string {
	if x != nil {
		return x.ListingId
	}
	return ""
}

type GetListingReply struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Listing       *Listing               `protobuf:"bytes,1,opt,name=listing,proto3" json:"listing,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetListingReply) Reset() {
	*x = GetListingReply{}
	mi := &file_marketplace_v1_marketplace_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetListingReply) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetListingReply) ProtoMessage() {}

func (x *GetListingReply) ProtoReflect() protoreflect.Message {
	mi := &file_marketplace_v1_marketplace_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetListingReply.ProtoReflect.Descriptor instead.
func (*GetListingReply) Descriptor() ([]byte, []int) {
	return file_marketplace_v1_marketplace_proto_rawDescGZIP(), []int{5}
}

func (x *GetListingReply) GetListing() *Listing {
	if x != nil {
		return x.Listing
	}
	return nil
}

type CreateListingRequest struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	Title           string                 `protobuf:"bytes,1,opt,name=title,proto3" json:"title,omitempty"`
	Category        string                 `protobuf:"bytes,2,opt,name=category,proto3" json:"category,omitempty"`
	Subcategory     string                 `protobuf:"bytes,3,opt,name=subcategory,proto3" json:"subcategory,omitempty"`
	Condition       string                 `protobuf:"bytes,4,opt,name=condition,proto3" json:"condition,omitempty"`
	Size            string                 `protobuf:"bytes,5,opt,name=size,proto3" json:"size,omitempty"`
	Price           *Money                 `protobuf:"bytes,6,opt,name=price,proto3" json:"price,omitempty"`
	Year            int64                  `protobuf:"varint,7,opt,name=year,proto3" json:"year,omitempty"`
	Untimed         bool                   `protobuf:"varint,8,opt,name=untimed,proto3" json:"untimed,omitempty"`
	MultibuyEnabled bool                   `protobuf:"varint,9,opt,name=multibuy_enabled,json=multibuyEnabled,proto3" json:"multibuy_enabled,omitempty"`
	PublicReleaseAt *timestamppb.Timestamp `protobuf:"bytes,10,opt,name=public_release_at,json=publicReleaseAt,proto3" json:"public_release_at,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *CreateListingRequest) Reset() {
	*x = CreateListingRequest{}
	mi := &file_marketplace_v1_marketplace_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateListingRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateListingRequest) ProtoMessage() {}

func (x *CreateListingRequest) ProtoReflect() protoreflect.Message {
	mi := &file_marketplace_v1_marketplace_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateListingRequest.ProtoReflect.Descriptor instead.
func (*CreateListingRequest) Descriptor() ([]byte, []int) {
	return file_marketplace_v1_marketplace_proto_rawDescGZIP(), []int{6}
}

func (x *CreateListingRequest) GetTitle() string {
	if x != nil {
		return x.Title
	}
	return ""
}

func (x *CreateListingRequest) GetCategory() string {
	if x != nil {
		return x.Category
	}
	return ""
}

func (x *CreateListingRequest) GetSubcategory() string {
	if x != nil {
		return x.Subcategory
	}
	return ""
}

func (x *CreateListingRequest) GetCondition() string {
	if x != nil {
		return x.Condition
	}
	return ""
}

func (x *CreateListingRequest) GetSize() string {
	if x != nil {
		return x.Size
	}
	return ""
}

func (x *CreateListingRequest) GetPrice() *Money {
	if x != nil {
		return x.Price
	}
	return nil
}

func (x *CreateListingRequest) GetYear() int64 {
	if x != nil {
		return x.Year
	}
	return 0
}

func (x *CreateListingRequest) GetUntimed() bool {
	if x != nil {
		return x.Untimed
	}
	return false
}

func (x *CreateListingRequest) GetMultibuyEnabled() bool {
	if x != nil {
		return x.MultibuyEnabled
	}
	return false
}

func (x *CreateListingRequest) GetPublicReleaseAt() *timestamppb.Timestamp {
	if x != nil {
		return x.PublicReleaseAt
	}
	return nil
}

type CreateListingReply struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ListingId     string                 `protobuf:"bytes,1,opt,name=listing_id,json=listingId,proto3" json:"listing_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateListingReply) Reset() {
	*x = CreateListingReply{}
	mi := &file_marketplace_v1_marketplace_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateListingReply) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateListingReply) ProtoMessage() {}

func (x *CreateListingReply) ProtoReflect() protoreflect.Message {
	mi := &file_marketplace_v1_marketplace_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateListingReply.ProtoReflect.Descriptor instead.
func (*CreateListingReply) Descriptor() ([]byte, []int) {
	return file_marketplace_v1_marketplace_proto_rawDescGZIP(), []int{7}
}

func (x *CreateListingReply) GetListingId() string {
	if x != nil {
		return x.ListingId
	}
	return ""
}

type UpdateListingRequest struct {
	state              protoimpl.MessageState `protogen:"open.v1"`
	ListingId          string                 `protobuf:"bytes,1,opt,name=listing_id,json=listingId,proto3" json:"listing_id,omitempty"`
	Title              *string                `protobuf:"bytes,2,opt,name=title,proto3,oneof" json:"title,omitempty"`
	Subcategory        *string                `protobuf:"bytes,3,opt,name=subcategory,proto3,oneof" json:"subcategory,omitempty"`
	Condition          *string                `protobuf:"bytes,4,opt,name=condition,proto3,oneof" json:"condition,omitempty"`
	Size               *string                `protobuf:"bytes,5,opt,name=size,proto3,oneof" json:"size,omitempty"`
	Price              *Money                 `protobuf:"bytes,6,opt,name=price,proto3" json:"price,omitempty"`
	PublicReleaseAt    *timestamppb.Timestamp `protobuf:"bytes,7,opt,name=public_release_at,json=publicReleaseAt,proto3" json:"public_release_at,omitempty"`
	ClearPublicRelease bool                   `protobuf:"varint,8,opt,name=clear_public_release,json=clearPublicRelease,proto3" json:"clear_public_release,omitempty"`
	unknownFields      protoimpl.UnknownFields
	sizeCache          protoimpl.SizeCache
}

func (x *UpdateListingRequest) Reset() {
	*x = UpdateListingRequest{}
	mi := &file_marketplace_v1_marketplace_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateListingRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateListingRequest) ProtoMessage() {}

func (x *UpdateListingRequest) ProtoReflect() protoreflect.Message {
	mi := &file_marketplace_v1_marketplace_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateListingRequest.ProtoReflect.Descriptor instead.
func (*UpdateListingRequest) Descriptor() ([]byte, []int) {
	return file_marketplace_v1_marketplace_proto_rawDescGZIP(), []int{8}
}

func (x *UpdateListingRequest) GetListingId() string {
	if x != nil {
		return x.ListingId
	}
	return ""
}

func (x *UpdateListingRequest) GetTitle() string {
	if x != nil && x.Title != nil {
		return *x.Title
	}
	return ""
}

func (x *UpdateListingRequest) GetSubcategory() string {
	if x != nil && x.Subcategory != nil {
		return *x.Subcategory
	}
	return ""
}

func (x *UpdateListingRequest) GetCondition() string {
	if x != nil && x.Condition != nil {
		return *x.Condition
	}
	return ""
}

func (x *UpdateListingRequest) GetSize() string {
	if x != nil && x.Size != nil {
		return *x.Size
	}
	return ""
}

func (x *UpdateListingRequest) GetPrice() *Money {
	if x != nil {
		return x.Price
	}
	return nil
}

func (x *UpdateListingRequest) GetPublicReleaseAt() *timestamppb.Timestamp {
	if x != nil {
		return x.PublicReleaseAt
	}
	return nil
}

func (x *UpdateListingRequest) GetClearPublicRelease() bool {
	if x != nil {
		return x.ClearPublicRelease
	}
	return false
}

type UpdateListingReply struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateListingReply) Reset() {
	*x = UpdateListingReply{}
	mi := &file_marketplace_v1_marketplace_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateListingReply) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateListingReply) ProtoMessage() {}

func (x *UpdateListingReply) ProtoReflect() protoreflect.Message {
	mi := &file_marketplace_v1_marketplace_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateListingReply.ProtoReflect.Descriptor instead.
func (*UpdateListingReply) Descriptor() ([]byte, []int) {
	return file_marketplace_v1_marketplace_proto_rawDescGZIP(), []int{9}
}

type SetListingStatusRequest struct {
	state     protoimpl.MessageState `protogen:"open.v1"`
	ListingId string                 `protobuf:"bytes,1,opt,name=listing_id,json=listingId,proto3" json:"listing_id,omitempty"`
	// One of: submit, approve, hold, release_hold.
	Transition    string `protobuf:"bytes,2,opt,name=transition,proto3" json:"transition,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SetListingStatusRequest) Reset() {
	*x = SetListingStatusRequest{}
	mi := &file_marketplace_v1_marketplace_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SetListingStatusRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SetListingStatusRequest) ProtoMessage() {}

func (x *SetListingStatusRequest) ProtoReflect() protoreflect.Message {
	mi := &file_marketplace_v1_marketplace_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SetListingStatusRequest.ProtoReflect.Descriptor instead.
func (*SetListingStatusRequest) Descriptor() ([]byte, []int) {
	return file_marketplace_v1_marketplace_proto_rawDescGZIP(), []int{10}
}

func (x *SetListingStatusRequest) GetListingId() string {
	if x != nil {
		return x.ListingId
	}
	return ""
}

func (x *SetListingStatusRequest) GetTransition() string {
	if x != nil {
		return x.Transition
	}
	return ""
}

type SetListingStatusReply struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SetListingStatusReply) Reset() {
	*x = SetListingStatusReply{}
	mi := &file_marketplace_v1_marketplace_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SetListingStatusReply) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SetListingStatusReply) ProtoMessage() {}

func (x *SetListingStatusReply) ProtoReflect() protoreflect.Message {
	mi := &file_marketplace_v1_marketplace_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SetListingStatusReply.ProtoReflect.Descriptor instead.
func (*SetListingStatusReply) Descriptor() ([]byte, []int) {
	return file_marketplace_v1_marketplace_proto_rawDescGZIP(), []int{11}
}

type RecordViewRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ListingId     string                 `protobuf:"bytes,1,opt,name=listing_id,json=listingId,proto3" json:"listing_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RecordViewRequest) Reset() {
	*x = RecordViewRequest{}
	mi := &file_marketplace_v1_marketplace_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RecordViewRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RecordViewRequest) ProtoMessage() {}

func (x *RecordViewRequest) ProtoReflect() protoreflect.Message {
	mi := &file_marketplace_v1_marketplace_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RecordViewRequest.ProtoReflect.Descriptor instead.
func (*RecordViewRequest) Descriptor() ([]byte, []int) {
	return file_marketplace_v1_marketplace_proto_rawDescGZIP(), []int{12}
}

func (x *RecordViewRequest) GetListingId() string {
	if x != nil {
		return x.ListingId
	}
	return ""
}

type RecordViewReply struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RecordViewReply) Reset() {
	*x = RecordViewReply{}
	mi := &file_marketplace_v1_marketplace_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RecordViewReply) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RecordViewReply) ProtoMessage() {}

func (x *RecordViewReply) ProtoReflect() protoreflect.Message {
	mi := &file_marketplace_v1_marketplace_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RecordViewReply.ProtoReflect.Descriptor instead.
func (*RecordViewReply) Descriptor() ([]byte, []int) {
	return file_marketplace_v1_marketplace_proto_rawDescGZIP(), []int{13}
}

type BulkCreateListingsRequest struct {
	state         protoimpl.MessageState  `protogen:"open.v1"`
	Rows          []*CreateListingRequest `protobuf:"bytes,1,rep,name=rows,proto3" json:"rows,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *BulkCreateListingsRequest) Reset() {
	*x = BulkCreateListingsRequest{}
	mi := &file_marketplace_v1_marketplace_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *BulkCreateListingsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*BulkCreateListingsRequest) ProtoMessage() {}

func (x *BulkCreateListingsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_marketplace_v1_marketplace_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use BulkCreateListingsRequest.ProtoReflect.Descriptor instead.
func (*BulkCreateListingsRequest) Descriptor() ([]byte, []int) {
	return file_marketplace_v1_marketplace_proto_rawDescGZIP(), []int{14}
}

func (x *BulkCreateListingsRequest) GetRows() []*CreateListingRequest {
	if x != nil {
		return x.Rows
	}
	return nil
}

type BulkCreateListingsReply struct {
	state         protoimpl.MessageState         `protogen:"open.v1"`
	Rows          []*BulkCreateListingsReply_Row `protobuf:"bytes,1,rep,name=rows,proto3" json:"rows,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *BulkCreateListingsReply) Reset() {
	*x = BulkCreateListingsReply{}
	mi := &file_marketplace_v1_marketplace_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *BulkCreateListingsReply) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*BulkCreateListingsReply) ProtoMessage() {}

func (x *BulkCreateListingsReply) ProtoReflect() protoreflect.Message {
	mi := &file_marketplace_v1_marketplace_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use BulkCreateListingsReply.ProtoReflect.Descriptor instead.
func (*BulkCreateListingsReply) Descriptor() ([]byte, []int) {
	return file_marketplace_v1_marketplace_proto_rawDescGZIP(), []int{15}
}

func (x *BulkCreateListingsReply) GetRows() []*BulkCreateListingsReply_Row {
	if x != nil {
		return x.Rows
	}
	return nil
}

type CheckoutRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ListingId     string                 `protobuf:"bytes,1,opt,name=listing_id,json=listingId,proto3" json:"listing_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CheckoutRequest) Reset() {
	*x = CheckoutRequest{}
	mi := &file_marketplace_v1_marketplace_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CheckoutRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CheckoutRequest) ProtoMessage() {}

func (x *CheckoutRequest) ProtoReflect() protoreflect.Message {
	mi := &file_marketplace_v1_marketplace_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CheckoutRequest.ProtoReflect.Descriptor instead.
func (*CheckoutRequest) Descriptor() ([]byte, []int) {
	return file_marketplace_v1_marketplace_proto_rawDescGZIP(), []int{16}
}

func (x *CheckoutRequest) GetListingId() string {
	if x != nil {
		return x.ListingId
	}
	return ""
}

type CheckoutReply struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	OrderId       string                 `protobuf:"bytes,1,opt,name=order_id,json=orderId,proto3" json:"order_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CheckoutReply) Reset() {
	*x = CheckoutReply{}
	mi := &file_marketplace_v1_marketplace_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CheckoutReply) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CheckoutReply) ProtoMessage() {}

func (x *CheckoutReply) ProtoReflect() protoreflect.Message {
	mi := &file_marketplace_v1_marketplace_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CheckoutReply.ProtoReflect.Descriptor instead.
func (*CheckoutReply) Descriptor() ([]byte, []int) {
	return file_marketplace_v1_marketplace_proto_rawDescGZIP(), []int{17}
}

func (x *CheckoutReply) GetOrderId() string {
	if x != nil {
		return x.OrderId
	}
	return ""
}

type SendMessageRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ListingId     string                 `protobuf:"bytes,1,opt,name=listing_id,json=listingId,proto3" json:"listing_id,omitempty"`
	BuyerId       string                 `protobuf:"bytes,2,opt,name=buyer_id,json=buyerId,proto3" json:"buyer_id,omitempty"`
	Body          string                 `protobuf:"bytes,3,opt,name=body,proto3" json:"body,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SendMessageRequest) Reset() {
	*x = SendMessageRequest{}
	mi := &file_marketplace_v1_marketplace_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SendMessageRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SendMessageRequest) ProtoMessage() {}

func (x *SendMessageRequest) ProtoReflect() protoreflect.Message {
	mi := &file_marketplace_v1_marketplace_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SendMessageRequest.ProtoReflect.Descriptor instead.
func (*SendMessageRequest) Descriptor() ([]byte, []int) {
	return file_marketplace_v1_marketplace_proto_rawDescGZIP(), []int{18}
}

func (x *SendMessageRequest) GetListingId() string {
	if x != nil {
		return x.ListingId
	}
	return ""
}

func (x *SendMessageRequest) GetBuyerId() string {
	if x != nil {
		return x.BuyerId
	}
	return ""
}

func (x *SendMessageRequest) GetBody() string {
	if x != nil {
		return x.Body
	}
	return ""
}

type SendMessageReply struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ThreadId      string                 `protobuf:"bytes,1,opt,name=thread_id,json=threadId,proto3" json:"thread_id,omitempty"`
	MessageId     string                 `protobuf:"bytes,2,opt,name=message_id,json=messageId,proto3" json:"message_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SendMessageReply) Reset() {
	*x = SendMessageReply{}
	mi := &file_marketplace_v1_marketplace_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SendMessageReply) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SendMessageReply) ProtoMessage() {}

func (x *SendMessageReply) ProtoReflect() protoreflect.Message {
	mi := &file_marketplace_v1_marketplace_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SendMessageReply.ProtoReflect.Descriptor instead.
func (*SendMessageReply) Descriptor() ([]byte, []int) {
	return file_marketplace_v1_marketplace_proto_rawDescGZIP(), []int{19}
}

func (x *SendMessageReply) GetThreadId() string {
	if x != nil {
		return x.ThreadId
	}
	return ""
}

func (x *SendMessageReply) GetMessageId() string {
	if x != nil {
		return x.MessageId
	}
	return ""
}

type SuggestPriceRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ListingId     string                 `protobuf:"bytes,1,opt,name=listing_id,json=listingId,proto3" json:"listing_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SuggestPriceRequest) Reset() {
	*x = SuggestPriceRequest{}
	mi := &file_marketplace_v1_marketplace_proto_msgTypes[20]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SuggestPriceRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SuggestPriceRequest) ProtoMessage() {}

func (x *SuggestPriceRequest) ProtoReflect() protoreflect.Message {
	mi := &file_marketplace_v1_marketplace_proto_msgTypes[20]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SuggestPriceRequest.ProtoReflect.Descriptor instead.
func (*SuggestPriceRequest) Descriptor() ([]byte, []int) {
	return file_marketplace_v1_marketplace_proto_rawDescGZIP(), []int{20}
}

func (x *SuggestPriceRequest) GetListingId() string {
	if x != nil {
		return x.ListingId
	}
	return ""
}

type SuggestPriceReply struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	SuggestedPrice float64                `protobuf:"fixed64,1,opt,name=suggested_price,json=suggestedPrice,proto3" json:"suggested_price,omitempty"`
	LowPrice       float64                `protobuf:"fixed64,2,opt,name=low_price,json=lowPrice,proto3" json:"low_price,omitempty"`
	HighPrice      float64                `protobuf:"fixed64,3,opt,name=high_price,json=highPrice,proto3" json:"high_price,omitempty"`
	Grade          string                 `protobuf:"bytes,4,opt,name=grade,proto3" json:"grade,omitempty"`
	Reasoning      string                 `protobuf:"bytes,5,opt,name=reasoning,proto3" json:"reasoning,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *SuggestPriceReply) Reset() {
	*x = SuggestPriceReply{}
	mi := &file_marketplace_v1_marketplace_proto_msgTypes[21]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SuggestPriceReply) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SuggestPriceReply) ProtoMessage() {}

func (x *SuggestPriceReply) ProtoReflect() protoreflect.Message {
	mi := &file_marketplace_v1_marketplace_proto_msgTypes[21]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SuggestPriceReply.ProtoReflect.Descriptor instead.
func (*SuggestPriceReply) Descriptor() ([]byte, []int) {
	return file_marketplace_v1_marketplace_proto_rawDescGZIP(), []int{21}
}

func (x *SuggestPriceReply) GetSuggestedPrice() float64 {
	if x != nil {
		return x.SuggestedPrice
	}
	return 0
}

func (x *SuggestPriceReply) GetLowPrice() float64 {
	if x != nil {
		return x.LowPrice
	}
	return 0
}

func (x *SuggestPriceReply) GetHighPrice() float64 {
	if x != nil {
		return x.HighPrice
	}
	return 0
}

func (x *SuggestPriceReply) GetGrade() string {
	if x != nil {
		return x.Grade
	}
	return ""
}

func (x *SuggestPriceReply) GetReasoning() string {
	if x != nil {
		return x.Reasoning
	}
	return ""
}

type CreateWantedRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Title         string                 `protobuf:"bytes,1,opt,name=title,proto3" json:"title,omitempty"`
	Category      string                 `protobuf:"bytes,2,opt,name=category,proto3" json:"category,omitempty"`
	MaxPrice      float64                `protobuf:"fixed64,3,opt,name=max_price,json=maxPrice,proto3" json:"max_price,omitempty"`
	Notes         string                 `protobuf:"bytes,4,opt,name=notes,proto3" json:"notes,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateWantedRequest) Reset() {
	*x = CreateWantedRequest{}
	mi := &file_marketplace_v1_marketplace_proto_msgTypes[22]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateWantedRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateWantedRequest) ProtoMessage() {}

func (x *CreateWantedRequest) ProtoReflect() protoreflect.Message {
	mi := &file_marketplace_v1_marketplace_proto_msgTypes[22]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateWantedRequest.ProtoReflect.Descriptor instead.
func (*CreateWantedRequest) Descriptor() ([]byte, []int) {
	return file_marketplace_v1_marketplace_proto_rawDescGZIP(), []int{22}
}

func (x *CreateWantedRequest) GetTitle() string {
	if x != nil {
		return x.Title
	}
	return ""
}

func (x *CreateWantedRequest) GetCategory() string {
	if x != nil {
		return x.Category
	}
	return ""
}

func (x *CreateWantedRequest) GetMaxPrice() float64 {
	if x != nil {
		return x.MaxPrice
	}
	return 0
}

func (x *CreateWantedRequest) GetNotes() string {
	if x != nil {
		return x.Notes
	}
	return ""
}

type CreateWantedReply struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	WantedId      string                 `protobuf:"bytes,1,opt,name=wanted_id,json=wantedId,proto3" json:"wanted_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateWantedReply) Reset() {
	*x = CreateWantedReply{}
	mi := &file_marketplace_v1_marketplace_proto_msgTypes[23]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateWantedReply) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateWantedReply) ProtoMessage() {}

func (x *CreateWantedReply) ProtoReflect() protoreflect.Message {
	mi := &file_marketplace_v1_marketplace_proto_msgTypes[23]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateWantedReply.ProtoReflect.Descriptor instead.
func (*CreateWantedReply) Descriptor() ([]byte, []int) {
	return file_marketplace_v1_marketplace_proto_rawDescGZIP(), []int{23}
}

func (x *CreateWantedReply) GetWantedId() string {
	if x != nil {
		return x.WantedId
	}
	return ""
}

type ListWantedRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Category      string                 `protobuf:"bytes,1,opt,name=category,proto3" json:"category,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListWantedRequest) Reset() {
	*x = ListWantedRequest{}
	mi := &file_marketplace_v1_marketplace_proto_msgTypes[24]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListWantedRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListWantedRequest) ProtoMessage() {}

func (x *ListWantedRequest) ProtoReflect() protoreflect.Message {
	mi := &file_marketplace_v1_marketplace_proto_msgTypes[24]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListWantedRequest.ProtoReflect.Descriptor instead.
func (*ListWantedRequest) Descriptor() ([]byte, []int) {
	return file_marketplace_v1_marketplace_proto_rawDescGZIP(), []int{24}
}

func (x *ListWantedRequest) GetCategory() string {
	if x != nil {
		return x.Category
	}
	return ""
}

type ListWantedReply struct {
	state         protoimpl.MessageState    `protogen:"open.v1"`
	Wanted        []*ListWantedReply_Wanted `protobuf:"bytes,1,rep,name=wanted,proto3" json:"wanted,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListWantedReply) Reset() {
	*x = ListWantedReply{}
	mi := &file_marketplace_v1_marketplace_proto_msgTypes[25]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListWantedReply) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListWantedReply) ProtoMessage() {}

func (x *ListWantedReply) ProtoReflect() protoreflect.Message {
	mi := &file_marketplace_v1_marketplace_proto_msgTypes[25]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListWantedReply.ProtoReflect.Descriptor instead.
func (*ListWantedReply) Descriptor() ([]byte, []int) {
	return file_marketplace_v1_marketplace_proto_rawDescGZIP(), []int{25}
}

func (x *ListWantedReply) GetWanted() []*ListWantedReply_Wanted {
	if x != nil {
		return x.Wanted
	}
	return nil
}

type BulkCreateListingsReply_Row struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Index         int32                  `protobuf:"varint,1,opt,name=index,proto3" json:"index,omitempty"`
	ListingId     string                 `protobuf:"bytes,2,opt,name=listing_id,json=listingId,proto3" json:"listing_id,omitempty"`
	Error         string                 `protobuf:"bytes,3,opt,name=error,proto3" json:"error,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *BulkCreateListingsReply_Row) Reset() {
	*x = BulkCreateListingsReply_Row{}
	mi := &file_marketplace_v1_marketplace_proto_msgTypes[26]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *BulkCreateListingsReply_Row) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*BulkCreateListingsReply_Row) ProtoMessage() {}

func (x *BulkCreateListingsReply_Row) ProtoReflect() protoreflect.Message {
	mi := &file_marketplace_v1_marketplace_proto_msgTypes[26]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use BulkCreateListingsReply_Row.ProtoReflect.Descriptor instead.
func (*BulkCreateListingsReply_Row) Descriptor() ([]byte, []int) {
	return file_marketplace_v1_marketplace_proto_rawDescGZIP(), []int{15, 0}
}

func (x *BulkCreateListingsReply_Row) GetIndex() int32 {
	if x != nil {
		return x.Index
	}
	return 0
}

func (x *BulkCreateListingsReply_Row) GetListingId() string {
	if x != nil {
		return x.ListingId
	}
	return ""
}

func (x *BulkCreateListingsReply_Row) GetError() string {
	if x != nil {
		return x.Error
	}
	return ""
}

type ListWantedReply_Wanted struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Title         string                 `protobuf:"bytes,2,opt,name=title,proto3" json:"title,omitempty"`
	Category      string                 `protobuf:"bytes,3,opt,name=category,proto3" json:"category,omitempty"`
	BuyerId       string                 `protobuf:"bytes,4,opt,name=buyer_id,json=buyerId,proto3" json:"buyer_id,omitempty"`
	MaxPrice      float64                `protobuf:"fixed64,5,opt,name=max_price,json=maxPrice,proto3" json:"max_price,omitempty"`
	Notes         string                 `protobuf:"bytes,6,opt,name=notes,proto3" json:"notes,omitempty"`
	CreatedAt     *timestamppb.Timestamp `protobuf:"bytes,7,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListWantedReply_Wanted) Reset() {
	*x = ListWantedReply_Wanted{}
	mi := &file_marketplace_v1_marketplace_proto_msgTypes[27]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListWantedReply_Wanted) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListWantedReply_Wanted) ProtoMessage() {}

func (x *ListWantedReply_Wanted) ProtoReflect() protoreflect.Message {
	mi := &file_marketplace_v1_marketplace_proto_msgTypes[27]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListWantedReply_Wanted.ProtoReflect.Descriptor instead.
func (*ListWantedReply_Wanted) Descriptor() ([]byte, []int) {
	return file_marketplace_v1_marketplace_proto_rawDescGZIP(), []int{25, 0}
}

func (x *ListWantedReply_Wanted) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *ListWantedReply_Wanted) GetTitle() string {
	if x != nil {
		return x.Title
	}
	return ""
}

func (x *ListWantedReply_Wanted) GetCategory() string {
	if x != nil {
		return x.Category
	}
	return ""
}

func (x *ListWantedReply_Wanted) GetBuyerId() string {
	if x != nil {
		return x.BuyerId
	}
	return ""
}

func (x *ListWantedReply_Wanted) GetMaxPrice() float64 {
	if x != nil {
		return x.MaxPrice
	}
	return 0
}

func (x *ListWantedReply_Wanted) GetNotes() string {
	if x != nil {
		return x.Notes
	}
	return ""
}

func (x *ListWantedReply_Wanted) GetCreatedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.CreatedAt
	}
	return nil
}

var File_marketplace_v1_marketplace_proto protoreflect.FileDescriptor

const file_marketplace_v1_marketplace_proto_rawDesc = "" +
	"\n" +
	" marketplace/v1/marketplace.proto\x12\x0emarketplace.v1\x1a\x1fgoogle/protobuf/timestamp.proto\"G\n" +
	"\x05Money\x12\x1c\n" +
	"\tnumerator\x18\x01 \x01(\x03R\tnumerator\x12 \n" +
	"\vdenominator\x18\x02 \x01(\x03R\vdenominator\"\x92\x05\n" +
	"\aListing\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x14\n" +
	"\x05title\x18\x02 \x01(\tR\x05title\x12\x1a\n" +
	"\bcategory\x18\x03 \x01(\tR\bcategory\x12 \n" +
	"\vsubcategory\x18\x04 \x01(\tR\vsubcategory\x12\x1c\n" +
	"\tcondition\x18\x05 \x01(\tR\tcondition\x12\x12\n" +
	"\x04size\x18\x06 \x01(\tR\x04size\x12+\n" +
	"\x05price\x18\a \x01(\v2\x15.marketplace.v1.MoneyR\x05price\x12\x12\n" +
	"\x04year\x18\b \x01(\x03R\x04year\x12\x1b\n" +
	"\tseller_id\x18\t \x01(\tR\bsellerId\x12'\n" +
	"\x0fseller_verified\x18\n" +
	" \x01(\bR\x0esellerVerified\x12\x1a\n" +
	"\bfeatured\x18\v \x01(\bR\bfeatured\x12\x18\n" +
	"\auntimed\x18\f \x01(\bR\auntimed\x12)\n" +
	"\x10multibuy_enabled\x18\r \x01(\bR\x0fmultibuyEnabled\x125\n" +
	"\x06status\x18\x0e \x01(\x0e2\x1d.marketplace.v1.ListingStatusR\x06status\x12F\n" +
	"\x11public_release_at\x18\x0f \x01(\v2\x1a.google.protobuf.TimestampR\x0fpublicReleaseAt\x129\n" +
	"\n" +
	"created_at\x18\x10 \x01(\v2\x1a.google.protobuf.TimestampR\tcreatedAt\x129\n" +
	"\n" +
	"updated_at\x18\x11 \x01(\v2\x1a.google.protobuf.TimestampR\tupdatedAt\x12\x14\n" +
	"\x05views\x18\x12 \x01(\x03R\x05views\"\xab\x04\n" +
	"\x15SearchListingsRequest\x12\x14\n" +
	"\x05query\x18\x01 \x01(\tR\x05query\x12\x1e\n" +
	"\n" +
	"categories\x18\x02 \x03(\tR\n" +
	"categories\x12 \n" +
	"\vsubcategory\x18\x03 \x01(\tR\vsubcategory\x12\x1e\n" +
	"\n" +
	"conditions\x18\x04 \x03(\tR\n" +
	"conditions\x12\x14\n" +
	"\x05sizes\x18\x05 \x03(\tR\x05sizes\x12\x1d\n" +
	"\n" +
	"seller_ids\x18\x06 \x03(\tR\tsellerIds\x12 \n" +
	"\tmin_price\x18\a \x01(\x01H\x00R\bminPrice\x88\x01\x01\x12 \n" +
	"\tmax_price\x18\b \x01(\x01H\x01R\bmaxPrice\x88\x01\x01\x12\x1e\n" +
	"\bmin_year\x18\t \x01(\x03H\x02R\aminYear\x88\x01\x01\x12\x1e\n" +
	"\bmax_year\x18\n" +
	" \x01(\x03H\x03R\amaxYear\x88\x01\x01\x12#\n" +
	"\rverified_only\x18\v \x01(\bR\fverifiedOnly\x12\x18\n" +
	"\auntimed\x18\f \x01(\bR\auntimed\x12#\n" +
	"\rmultibuy_only\x18\r \x01(\bR\fmultibuyOnly\x12\x12\n" +
	"\x04sort\x18\x0e \x01(\tR\x04sort\x12\x17\n" +
	"\alast_id\x18\x0f \x01(\tR\x06lastId\x12\x1a\n" +
	"\bstatuses\x18\x10 \x03(\tR\bstatusesB\f\n" +
	"\n" +
	"_min_priceB\f\n" +
	"\n" +
	"_max_priceB\v\n" +
	"\t_min_yearB\v\n" +
	"\t_max_year\"\xc3\x01\n" +
	"\x13SearchListingsReply\x123\n" +
	"\blistings\x18\x01 \x03(\v2\x17.marketplace.v1.ListingR\blistings\x12\x19\n" +
	"\bhas_more\x18\x02 \x01(\bR\ahasMore\x12&\n" +
	"\x0flast_visible_id\x18\x03 \x01(\tR\rlastVisibleId\x12$\n" +
	"\vtotal_count\x18\x04 \x01(\x03H\x00R\n" +
	"totalCount\x88\x01\x01B\x0e\n" +
	"\f_total_count\"2\n" +
	"\x11GetListingRequest\x12\x1d\n" +
	"\n" +
	"listing_id\x18\x01 \x01(\tR\tlistingId\"D\n" +
	"\x0fGetListingReply\x121\n" +
	"\alisting\x18\x01 \x01(\v2\x17.marketplace.v1.ListingR\alisting\"\xea\x02\n" +
	"\x14CreateListingRequest\x12\x14\n" +
	"\x05title\x18\x01 \x01(\tR\x05title\x12\x1a\n" +
	"\bcategory\x18\x02 \x01(\tR\bcategory\x12 \n" +
	"\vsubcategory\x18\x03 \x01(\tR\vsubcategory\x12\x1c\n" +
	"\tcondition\x18\x04 \x01(\tR\tcondition\x12\x12\n" +
	"\x04size\x18\x05 \x01(\tR\x04size\x12+\n" +
	"\x05price\x18\x06 \x01(\v2\x15.marketplace.v1.MoneyR\x05price\x12\x12\n" +
	"\x04year\x18\a \x01(\x03R\x04year\x12\x18\n" +
	"\auntimed\x18\b \x01(\bR\auntimed\x12)\n" +
	"\x10multibuy_enabled\x18\t \x01(\bR\x0fmultibuyEnabled\x12F\n" +
	"\x11public_release_at\x18\n" +
	" \x01(\v2\x1a.google.protobuf.TimestampR\x0fpublicReleaseAt\"3\n" +
	"\x12CreateListingReply\x12\x1d\n" +
	"\n" +
	"listing_id\x18\x01 \x01(\tR\tlistingId\"\x8b\x03\n" +
	"\x14UpdateListingRequest\x12\x1d\n" +
	"\n" +
	"listing_id\x18\x01 \x01(\tR\tlistingId\x12\x19\n" +
	"\x05title\x18\x02 \x01(\tH\x00R\x05title\x88\x01\x01\x12%\n" +
	"\vsubcategory\x18\x03 \x01(\tH\x01R\vsubcategory\x88\x01\x01\x12!\n" +
	"\tcondition\x18\x04 \x01(\tH\x02R\tcondition\x88\x01\x01\x12\x17\n" +
	"\x04size\x18\x05 \x01(\tH\x03R\x04size\x88\x01\x01\x12+\n" +
	"\x05price\x18\x06 \x01(\v2\x15.marketplace.v1.MoneyR\x05price\x12F\n" +
	"\x11public_release_at\x18\a \x01(\v2\x1a.google.protobuf.TimestampR\x0fpublicReleaseAt\x120\n" +
	"\x14clear_public_release\x18\b \x01(\bR\x12clearPublicReleaseB\b\n" +
	"\x06_titleB\x0e\n" +
	"\f_subcategoryB\f\n" +
	"\n" +
	"_conditionB\a\n" +
	"\x05_size\"\x14\n" +
	"\x12UpdateListingReply\"X\n" +
	"\x17SetListingStatusRequest\x12\x1d\n" +
	"\n" +
	"listing_id\x18\x01 \x01(\tR\tlistingId\x12\x1e\n" +
	"\n" +
	"transition\x18\x02 \x01(\tR\n" +
	"transition\"\x17\n" +
	"\x15SetListingStatusReply\"2\n" +
	"\x11RecordViewRequest\x12\x1d\n" +
	"\n" +
	"listing_id\x18\x01 \x01(\tR\tlistingId\"\x11\n" +
	"\x0fRecordViewReply\"U\n" +
	"\x19BulkCreateListingsRequest\x128\n" +
	"\x04rows\x18\x01 \x03(\v2$.marketplace.v1.CreateListingRequestR\x04rows\"\xac\x01\n" +
	"\x17BulkCreateListingsReply\x12?\n" +
	"\x04rows\x18\x01 \x03(\v2+.marketplace.v1.BulkCreateListingsReply.RowR\x04rows\x1aP\n" +
	"\x03Row\x12\x14\n" +
	"\x05index\x18\x01 \x01(\x05R\x05index\x12\x1d\n" +
	"\n" +
	"listing_id\x18\x02 \x01(\tR\tlistingId\x12\x14\n" +
	"\x05error\x18\x03 \x01(\tR\x05error\"0\n" +
	"\x0fCheckoutRequest\x12\x1d\n" +
	"\n" +
	"listing_id\x18\x01 \x01(\tR\tlistingId\"*\n" +
	"\rCheckoutReply\x12\x19\n" +
	"\border_id\x18\x01 \x01(\tR\aorderId\"b\n" +
	"\x12SendMessageRequest\x12\x1d\n" +
	"\n" +
	"listing_id\x18\x01 \x01(\tR\tlistingId\x12\x19\n" +
	"\bbuyer_id\x18\x02 \x01(\tR\abuyerId\x12\x12\n" +
	"\x04body\x18\x03 \x01(\tR\x04body\"N\n" +
	"\x10SendMessageReply\x12\x1b\n" +
	"\tthread_id\x18\x01 \x01(\tR\bthreadId\x12\x1d\n" +
	"\n" +
	"message_id\x18\x02 \x01(\tR\tmessageId\"4\n" +
	"\x13SuggestPriceRequest\x12\x1d\n" +
	"\n" +
	"listing_id\x18\x01 \x01(\tR\tlistingId\"\xac\x01\n" +
	"\x11SuggestPriceReply\x12'\n" +
	"\x0fsuggested_price\x18\x01 \x01(\x01R\x0esuggestedPrice\x12\x1b\n" +
	"\tlow_price\x18\x02 \x01(\x01R\blowPrice\x12\x1d\n" +
	"\n" +
	"high_price\x18\x03 \x01(\x01R\thighPrice\x12\x14\n" +
	"\x05grade\x18\x04 \x01(\tR\x05grade\x12\x1c\n" +
	"\treasoning\x18\x05 \x01(\tR\treasoning\"z\n" +
	"\x13CreateWantedRequest\x12\x14\n" +
	"\x05title\x18\x01 \x01(\tR\x05title\x12\x1a\n" +
	"\bcategory\x18\x02 \x01(\tR\bcategory\x12\x1b\n" +
	"\tmax_price\x18\x03 \x01(\x01R\bmaxPrice\x12\x14\n" +
	"\x05notes\x18\x04 \x01(\tR\x05notes\"0\n" +
	"\x11CreateWantedReply\x12\x1b\n" +
	"\twanted_id\x18\x01 \x01(\tR\bwantedId\"/\n" +
	"\x11ListWantedRequest\x12\x1a\n" +
	"\bcategory\x18\x01 \x01(\tR\bcategory\"\xa7\x02\n" +
	"\x0fListWantedReply\x12>\n" +
	"\x06wanted\x18\x01 \x03(\v2&.marketplace.v1.ListWantedReply.WantedR\x06wanted\x1a\xd3\x01\n" +
	"\x06Wanted\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x14\n" +
	"\x05title\x18\x02 \x01(\tR\x05title\x12\x1a\n" +
	"\bcategory\x18\x03 \x01(\tR\bcategory\x12\x19\n" +
	"\bbuyer_id\x18\x04 \x01(\tR\abuyerId\x12\x1b\n" +
	"\tmax_price\x18\x05 \x01(\x01R\bmaxPrice\x12\x14\n" +
	"\x05notes\x18\x06 \x01(\tR\x05notes\x129\n" +
	"\n" +
	"created_at\x18\a \x01(\v2\x1a.google.protobuf.TimestampR\tcreatedAt*\xc1\x01\n" +
	"\rListingStatus\x12\x1e\n" +
	"\x1aLISTING_STATUS_UNSPECIFIED\x10\x00\x12\x18\n" +
	"\x14LISTING_STATUS_DRAFT\x10\x01\x12#\n" +
	"\x1fLISTING_STATUS_PENDING_APPROVAL\x10\x02\x12\x1c\n" +
	"\x18LISTING_STATUS_AVAILABLE\x10\x03\x12\x1a\n" +
	"\x16LISTING_STATUS_ON_HOLD\x10\x04\x12\x17\n" +
	"\x13LISTING_STATUS_SOLD\x10\x052\xbd\b\n" +
	"\x12MarketplaceService\x12\\\n" +
	"\x0eSearchListings\x12%.marketplace.v1.SearchListingsRequest\x1a#.marketplace.v1.SearchListingsReply\x12P\n" +
	"\n" +
	"GetListing\x12!.marketplace.v1.GetListingRequest\x1a\x1f.marketplace.v1.GetListingReply\x12Y\n" +
	"\rCreateListing\x12$.marketplace.v1.CreateListingRequest\x1a\".marketplace.v1.CreateListingReply\x12Y\n" +
	"\rUpdateListing\x12$.marketplace.v1.UpdateListingRequest\x1a\".marketplace.v1.UpdateListingReply\x12b\n" +
	"\x10SetListingStatus\x12'.marketplace.v1.SetListingStatusRequest\x1a%.marketplace.v1.SetListingStatusReply\x12P\n" +
	"\n" +
	"RecordView\x12!.marketplace.v1.RecordViewRequest\x1a\x1f.marketplace.v1.RecordViewReply\x12h\n" +
	"\x12BulkCreateListings\x12).marketplace.v1.BulkCreateListingsRequest\x1a'.marketplace.v1.BulkCreateListingsReply\x12J\n" +
	"\bCheckout\x12\x1f.marketplace.v1.CheckoutRequest\x1a\x1d.marketplace.v1.CheckoutReply\x12S\n" +
	"\vSendMessage\x12\".marketplace.v1.SendMessageRequest\x1a .marketplace.v1.SendMessageReply\x12V\n" +
	"\fSuggestPrice\x12#.marketplace.v1.SuggestPriceRequest\x1a!.marketplace.v1.SuggestPriceReply\x12V\n" +
	"\fCreateWanted\x12#.marketplace.v1.CreateWantedRequest\x1a!.marketplace.v1.CreateWantedReply\x12P\n" +
	"\n" +
	"ListWanted\x12!.marketplace.v1.ListWantedRequest\x1a\x1f.marketplace.v1.ListWantedReplyBKZIgithub.com/vintaro/marketplace-service/proto/marketplace/v1;marketplacev1b\x06proto3"

var (
	file_marketplace_v1_marketplace_proto_rawDescOnce sync.Once
	file_marketplace_v1_marketplace_proto_rawDescData []byte
)

func file_marketplace_v1_marketplace_proto_rawDescGZIP() []byte {
	file_marketplace_v1_marketplace_proto_rawDescOnce.Do(func() {
		file_marketplace_v1_marketplace_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_marketplace_v1_marketplace_proto_rawDesc), len(file_marketplace_v1_marketplace_proto_rawDesc)))
	})
	return file_marketplace_v1_marketplace_proto_rawDescData
}

var file_marketplace_v1_marketplace_proto_enumTypes = make([]protoimpl.EnumInfo, 1)
var file_marketplace_v1_marketplace_proto_msgTypes = make([]protoimpl.MessageInfo, 28)
var file_marketplace_v1_marketplace_proto_goTypes = []any{
	(ListingStatus)(0),                  // 0: marketplace.v1.ListingStatus
	(*Money)(nil),                       // 1: marketplace.v1.Money
	(*Listing)(nil),                     // 2: marketplace.v1.Listing
	(*SearchListingsRequest)(nil),       // 3: marketplace.v1.SearchListingsRequest
	(*SearchListingsReply)(nil),         // 4: marketplace.v1.SearchListingsReply
	(*GetListingRequest)(nil),           // 5: marketplace.v1.GetListingRequest
	(*GetListingReply)(nil),             // 6: marketplace.v1.GetListingReply
	(*CreateListingRequest)(nil),        // 7: marketplace.v1.CreateListingRequest
	(*CreateListingReply)(nil),          // 8: marketplace.v1.CreateListingReply
	(*UpdateListingRequest)(nil),        // 9: marketplace.v1.UpdateListingRequest
	(*UpdateListingReply)(nil),          // 10: marketplace.v1.UpdateListingReply
	(*SetListingStatusRequest)(nil),     // 11: marketplace.v1.SetListingStatusRequest
	(*SetListingStatusReply)(nil),       // 12: marketplace.v1.SetListingStatusReply
	(*RecordViewRequest)(nil),           // 13: marketplace.v1.RecordViewRequest
	(*RecordViewReply)(nil),             // 14: marketplace.v1.RecordViewReply
	(*BulkCreateListingsRequest)(nil),   // 15: marketplace.v1.BulkCreateListingsRequest
	(*BulkCreateListingsReply)(nil),     // 16: marketplace.v1.BulkCreateListingsReply
	(*CheckoutRequest)(nil),             // 17: marketplace.v1.CheckoutRequest
	(*CheckoutReply)(nil),               // 18: marketplace.v1.CheckoutReply
	(*SendMessageRequest)(nil),          // 19: marketplace.v1.SendMessageRequest
	(*SendMessageReply)(nil),            // 20: marketplace.v1.SendMessageReply
	(*SuggestPriceRequest)(nil),         // 21: marketplace.v1.SuggestPriceRequest
	(*SuggestPriceReply)(nil),           // 22: marketplace.v1.SuggestPriceReply
	(*CreateWantedRequest)(nil),         // 23: marketplace.v1.CreateWantedRequest
	(*CreateWantedReply)(nil),           // 24: marketplace.v1.CreateWantedReply
	(*ListWantedRequest)(nil),           // 25: marketplace.v1.ListWantedRequest
	(*ListWantedReply)(nil),             // 26: marketplace.v1.ListWantedReply
	(*BulkCreateListingsReply_Row)(nil), // 27: marketplace.v1.BulkCreateListingsReply.Row
	(*ListWantedReply_Wanted)(nil),      // 28: marketplace.v1.ListWantedReply.Wanted
	(*timestamppb.Timestamp)(nil),       // 29: google.protobuf.Timestamp
}
var file_marketplace_v1_marketplace_proto_depIdxs = []int32{
	1,  // 0: marketplace.v1.Listing.price:type_name -> marketplace.v1.Money
	0,  // 1: marketplace.v1.Listing.status:type_name -> marketplace.v1.ListingStatus
	29, // 2: marketplace.v1.Listing.public_release_at:type_name -> google.protobuf.Timestamp
	29, // 3: marketplace.v1.Listing.created_at:type_name -> google.protobuf.Timestamp
	29, // 4: marketplace.v1.Listing.updated_at:type_name -> google.protobuf.Timestamp
	2,  // 5: marketplace.v1.SearchListingsReply.listings:type_name -> marketplace.v1.Listing
	2,  // 6: marketplace.v1.GetListingReply.listing:type_name -> marketplace.v1.Listing
	1,  // 7: marketplace.v1.CreateListingRequest.price:type_name -> marketplace.v1.Money
	29, // 8: marketplace.v1.CreateListingRequest.public_release_at:type_name -> google.protobuf.Timestamp
	1,  // 9: marketplace.v1.UpdateListingRequest.price:type_name -> marketplace.v1.Money
	29, // 10: marketplace.v1.UpdateListingRequest.public_release_at:type_name -> google.protobuf.Timestamp
	7,  // 11: marketplace.v1.BulkCreateListingsRequest.rows:type_name -> marketplace.v1.CreateListingRequest
	27, // 12: marketplace.v1.BulkCreateListingsReply.rows:type_name -> marketplace.v1.BulkCreateListingsReply.Row
	28, // 13: marketplace.v1.ListWantedReply.wanted:type_name -> marketplace.v1.ListWantedReply.Wanted
	29, // 14: marketplace.v1.ListWantedReply.Wanted.created_at:type_name -> google.protobuf.Timestamp
	3,  // 15: marketplace.v1.MarketplaceService.SearchListings:input_type -> marketplace.v1.SearchListingsRequest
	5,  // 16: marketplace.v1.MarketplaceService.GetListing:input_type -> marketplace.v1.GetListingRequest
	7,  // 17: marketplace.v1.MarketplaceService.CreateListing:input_type -> marketplace.v1.CreateListingRequest
	9,  // 18: marketplace.v1.MarketplaceService.UpdateListing:input_type -> marketplace.v1.UpdateListingRequest
	11, // 19: marketplace.v1.MarketplaceService.SetListingStatus:input_type -> marketplace.v1.SetListingStatusRequest
	13, // 20: marketplace.v1.MarketplaceService.RecordView:input_type -> marketplace.v1.RecordViewRequest
	15, // 21: marketplace.v1.MarketplaceService.BulkCreateListings:input_type -> marketplace.v1.BulkCreateListingsRequest
	17, // 22: marketplace.v1.MarketplaceService.Checkout:input_type -> marketplace.v1.CheckoutRequest
	19, // 23: marketplace.v1.MarketplaceService.SendMessage:input_type -> marketplace.v1.SendMessageRequest
	21, // 24: marketplace.v1.MarketplaceService.SuggestPrice:input_type -> marketplace.v1.SuggestPriceRequest
	23, // 25: marketplace.v1.MarketplaceService.CreateWanted:input_type -> marketplace.v1.CreateWantedRequest
	25, // 26: marketplace.v1.MarketplaceService.ListWanted:input_type -> marketplace.v1.ListWantedRequest
	4,  // 27: marketplace.v1.MarketplaceService.SearchListings:output_type -> marketplace.v1.SearchListingsReply
	6,  // 28: marketplace.v1.MarketplaceService.GetListing:output_type -> marketplace.v1.GetListingReply
	8,  // 29: marketplace.v1.MarketplaceService.CreateListing:output_type -> marketplace.v1.CreateListingReply
	10, // 30: marketplace.v1.MarketplaceService.UpdateListing:output_type -> marketplace.v1.UpdateListingReply
	12, // 31: marketplace.v1.MarketplaceService.SetListingStatus:output_type -> marketplace.v1.SetListingStatusReply
	14, // 32: marketplace.v1.MarketplaceService.RecordView:output_type -> marketplace.v1.RecordViewReply
	16, // 33: marketplace.v1.MarketplaceService.BulkCreateListings:output_type -> marketplace.v1.BulkCreateListingsReply
	18, // 34: marketplace.v1.MarketplaceService.Checkout:output_type -> marketplace.v1.CheckoutReply
	20, // 35: marketplace.v1.MarketplaceService.SendMessage:output_type -> marketplace.v1.SendMessageReply
	22, // 36: marketplace.v1.MarketplaceService.SuggestPrice:output_type -> marketplace.v1.SuggestPriceReply
	24, // 37: marketplace.v1.MarketplaceService.CreateWanted:output_type -> marketplace.v1.CreateWantedReply
	26, // 38: marketplace.v1.MarketplaceService.ListWanted:output_type -> marketplace.v1.ListWantedReply
	27, // [27:39] is the sub-list for method output_type
	15, // [15:27] is the sub-list for method input_type
	15, // [15:15] is the sub-list for extension type_name
	15, // [15:15] is the sub-list for extension extendee
	0,  // [0:15] is the sub-list for field type_name
}

func init() { file_marketplace_v1_marketplace_proto_init() }
func file_marketplace_v1_marketplace_proto_init() {
	if File_marketplace_v1_marketplace_proto != nil {
		return
	}
	file_marketplace_v1_marketplace_proto_msgTypes[2].OneofWrappers = []any{}
	file_marketplace_v1_marketplace_proto_msgTypes[3].OneofWrappers = []any{}
	file_marketplace_v1_marketplace_proto_msgTypes[8].OneofWrappers = []any{}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_marketplace_v1_marketplace_proto_rawDesc), len(file_marketplace_v1_marketplace_proto_rawDesc)),
			NumEnums:      1,
			NumMessages:   28,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_marketplace_v1_marketplace_proto_goTypes,
		DependencyIndexes: file_marketplace_v1_marketplace_proto_depIdxs,
		EnumInfos:         file_marketplace_v1_marketplace_proto_enumTypes,
		MessageInfos:      file_marketplace_v1_marketplace_proto_msgTypes,
	}.Build()
	File_marketplace_v1_marketplace_proto = out.File
	file_marketplace_v1_marketplace_proto_goTypes = nil
	file_marketplace_v1_marketplace_proto_depIdxs = nil
}
