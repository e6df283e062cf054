package api

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"
)

// WardrobeServiceName is the fully-qualified name of the service.
const WardrobeServiceName = "littlewardrobe.v1.WardrobeService"

// Procedure paths, relative to the server root.
const (
	ListItemsProcedure     = "/" + WardrobeServiceName + "/ListItems"
	GetItemProcedure       = "/" + WardrobeServiceName + "/GetItem"
	CreateItemProcedure    = "/" + WardrobeServiceName + "/CreateItem"
	UpdateItemProcedure    = "/" + WardrobeServiceName + "/UpdateItem"
	DeleteItemProcedure    = "/" + WardrobeServiceName + "/DeleteItem"
	ArchiveItemsProcedure  = "/" + WardrobeServiceName + "/ArchiveItems"
	GetProfileProcedure    = "/" + WardrobeServiceName + "/GetProfile"
	SaveProfileProcedure   = "/" + WardrobeServiceName + "/SaveProfile"
	GetSettingsProcedure   = "/" + WardrobeServiceName + "/GetSettings"
	SaveSettingsProcedure  = "/" + WardrobeServiceName + "/SaveSettings"
	CheckOutgrownProcedure = "/" + WardrobeServiceName + "/CheckOutgrown"
	SuggestOutfitProcedure = "/" + WardrobeServiceName + "/SuggestOutfit"
	GetDashboardProcedure  = "/" + WardrobeServiceName + "/GetDashboard"
	AnalyzeImageProcedure  = "/" + WardrobeServiceName + "/AnalyzeImage"
)

// WardrobeServiceHandler is implemented by the server.
type WardrobeServiceHandler interface {
	ListItems(context.Context, *connect.Request[ListItemsRequest]) (*connect.Response[ListItemsResponse], error)
	GetItem(context.Context, *connect.Request[GetItemRequest]) (*connect.Response[GetItemResponse], error)
	CreateItem(context.Context, *connect.Request[CreateItemRequest]) (*connect.Response[CreateItemResponse], error)
	UpdateItem(context.Context, *connect.Request[UpdateItemRequest]) (*connect.Response[UpdateItemResponse], error)
	DeleteItem(context.Context, *connect.Request[DeleteItemRequest]) (*connect.Response[DeleteItemResponse], error)
	ArchiveItems(context.Context, *connect.Request[ArchiveItemsRequest]) (*connect.Response[ArchiveItemsResponse], error)
	GetProfile(context.Context, *connect.Request[GetProfileRequest]) (*connect.Response[GetProfileResponse], error)
	SaveProfile(context.Context, *connect.Request[SaveProfileRequest]) (*connect.Response[SaveProfileResponse], error)
	GetSettings(context.Context, *connect.Request[GetSettingsRequest]) (*connect.Response[GetSettingsResponse], error)
	SaveSettings(context.Context, *connect.Request[SaveSettingsRequest]) (*connect.Response[SaveSettingsResponse], error)
	CheckOutgrown(context.Context, *connect.Request[CheckOutgrownRequest]) (*connect.Response[CheckOutgrownResponse], error)
	SuggestOutfit(context.Context, *connect.Request[SuggestOutfitRequest]) (*connect.Response[SuggestOutfitResponse], error)
	GetDashboard(context.Context, *connect.Request[GetDashboardRequest]) (*connect.Response[GetDashboardResponse], error)
	AnalyzeImage(context.Context, *connect.Request[AnalyzeImageRequest]) (*connect.Response[AnalyzeImageResponse], error)
}

// NewWardrobeServiceHandler builds an HTTP handler serving every procedure
// of svc. It returns the path prefix to mount the handler on.
func NewWardrobeServiceHandler(svc WardrobeServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(Codec{})}, opts...)

	mux := http.NewServeMux()
	mux.Handle(ListItemsProcedure, connect.NewUnaryHandler(ListItemsProcedure, svc.ListItems, opts...))
	mux.Handle(GetItemProcedure, connect.NewUnaryHandler(GetItemProcedure, svc.GetItem, opts...))
	mux.Handle(CreateItemProcedure, connect.NewUnaryHandler(CreateItemProcedure, svc.CreateItem, opts...))
	mux.Handle(UpdateItemProcedure, connect.NewUnaryHandler(UpdateItemProcedure, svc.UpdateItem, opts...))
	mux.Handle(DeleteItemProcedure, connect.NewUnaryHandler(DeleteItemProcedure, svc.DeleteItem, opts...))
	mux.Handle(ArchiveItemsProcedure, connect.NewUnaryHandler(ArchiveItemsProcedure, svc.ArchiveItems, opts...))
	mux.Handle(GetProfileProcedure, connect.NewUnaryHandler(GetProfileProcedure, svc.GetProfile, opts...))
	mux.Handle(SaveProfileProcedure, connect.NewUnaryHandler(SaveProfileProcedure, svc.SaveProfile, opts...))
	mux.Handle(GetSettingsProcedure, connect.NewUnaryHandler(GetSettingsProcedure, svc.GetSettings, opts...))
	mux.Handle(SaveSettingsProcedure, connect.NewUnaryHandler(SaveSettingsProcedure, svc.SaveSettings, opts...))
	mux.Handle(CheckOutgrownProcedure, connect.NewUnaryHandler(CheckOutgrownProcedure, svc.CheckOutgrown, opts...))
	mux.Handle(SuggestOutfitProcedure, connect.NewUnaryHandler(SuggestOutfitProcedure, svc.SuggestOutfit, opts...))
	mux.Handle(GetDashboardProcedure, connect.NewUnaryHandler(GetDashboardProcedure, svc.GetDashboard, opts...))
	mux.Handle(AnalyzeImageProcedure, connect.NewUnaryHandler(AnalyzeImageProcedure, svc.AnalyzeImage, opts...))
	return "/" + WardrobeServiceName + "/", mux
}

// WardrobeServiceClient calls a WardrobeService over HTTP.
type WardrobeServiceClient struct {
	listItems     *connect.Client[ListItemsRequest, ListItemsResponse]
	getItem       *connect.Client[GetItemRequest, GetItemResponse]
	createItem    *connect.Client[CreateItemRequest, CreateItemResponse]
	updateItem    *connect.Client[UpdateItemRequest, UpdateItemResponse]
	deleteItem    *connect.Client[DeleteItemRequest, DeleteItemResponse]
	archiveItems  *connect.Client[ArchiveItemsRequest, ArchiveItemsResponse]
	getProfile    *connect.Client[GetProfileRequest, GetProfileResponse]
	saveProfile   *connect.Client[SaveProfileRequest, SaveProfileResponse]
	getSettings   *connect.Client[GetSettingsRequest, GetSettingsResponse]
	saveSettings  *connect.Client[SaveSettingsRequest, SaveSettingsResponse]
	checkOutgrown *connect.Client[CheckOutgrownRequest, CheckOutgrownResponse]
	suggestOutfit *connect.Client[SuggestOutfitRequest, SuggestOutfitResponse]
	getDashboard  *connect.Client[GetDashboardRequest, GetDashboardResponse]
	analyzeImage  *connect.Client[AnalyzeImageRequest, AnalyzeImageResponse]
}

// NewWardrobeServiceClient creates a client for the service at baseURL.
func NewWardrobeServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *WardrobeServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{connect.WithCodec(Codec{})}, opts...)
	return &WardrobeServiceClient{
		listItems:     connect.NewClient[ListItemsRequest, ListItemsResponse](httpClient, baseURL+ListItemsProcedure, opts...),
		getItem:       connect.NewClient[GetItemRequest, GetItemResponse](httpClient, baseURL+GetItemProcedure, opts...),
		createItem:    connect.NewClient[CreateItemRequest, CreateItemResponse](httpClient, baseURL+CreateItemProcedure, opts...),
		updateItem:    connect.NewClient[UpdateItemRequest, UpdateItemResponse](httpClient, baseURL+UpdateItemProcedure, opts...),
		deleteItem:    connect.NewClient[DeleteItemRequest, DeleteItemResponse](httpClient, baseURL+DeleteItemProcedure, opts...),
		archiveItems:  connect.NewClient[ArchiveItemsRequest, ArchiveItemsResponse](httpClient, baseURL+ArchiveItemsProcedure, opts...),
		getProfile:    connect.NewClient[GetProfileRequest, GetProfileResponse](httpClient, baseURL+GetProfileProcedure, opts...),
		saveProfile:   connect.NewClient[SaveProfileRequest, SaveProfileResponse](httpClient, baseURL+SaveProfileProcedure, opts...),
		getSettings:   connect.NewClient[GetSettingsRequest, GetSettingsResponse](httpClient, baseURL+GetSettingsProcedure, opts...),
		saveSettings:  connect.NewClient[SaveSettingsRequest, SaveSettingsResponse](httpClient, baseURL+SaveSettingsProcedure, opts...),
		checkOutgrown: connect.NewClient[CheckOutgrownRequest, CheckOutgrownResponse](httpClient, baseURL+CheckOutgrownProcedure, opts...),
		suggestOutfit: connect.NewClient[SuggestOutfitRequest, SuggestOutfitResponse](httpClient, baseURL+SuggestOutfitProcedure, opts...),
		getDashboard:  connect.NewClient[GetDashboardRequest, GetDashboardResponse](httpClient, baseURL+GetDashboardProcedure, opts...),
		analyzeImage:  connect.NewClient[AnalyzeImageRequest, AnalyzeImageResponse](httpClient, baseURL+AnalyzeImageProcedure, opts...),
	}
}

func (c *WardrobeServiceClient) ListItems(ctx context.Context, req *connect.Request[ListItemsRequest]) (*connect.Response[ListItemsResponse], error) {
	return c.listItems.CallUnary(ctx, req)
}

func (c *WardrobeServiceClient) GetItem(ctx context.Context, req *connect.Request[GetItemRequest]) (*connect.Response[GetItemResponse], error) {
	return c.getItem.CallUnary(ctx, req)
}

func (c *WardrobeServiceClient) CreateItem(ctx context.Context, req *connect.Request[CreateItemRequest]) (*connect.Response[CreateItemResponse], error) {
	return c.createItem.CallUnary(ctx, req)
}

func (c *WardrobeServiceClient) UpdateItem(ctx context.Context, req *connect.Request[UpdateItemRequest]) (*connect.Response[UpdateItemResponse], error) {
	return c.updateItem.CallUnary(ctx, req)
}

func (c *WardrobeServiceClient) DeleteItem(ctx context.Context, req *connect.Request[DeleteItemRequest]) (*connect.Response[DeleteItemResponse], error) {
	return c.deleteItem.CallUnary(ctx, req)
}

func (c *WardrobeServiceClient) ArchiveItems(ctx context.Context, req *connect.Request[ArchiveItemsRequest]) (*connect.Response[ArchiveItemsResponse], error) {
	return c.archiveItems.CallUnary(ctx, req)
}

func (c *WardrobeServiceClient) GetProfile(ctx context.Context, req *connect.Request[GetProfileRequest]) (*connect.Response[GetProfileResponse], error) {
	return c.getProfile.CallUnary(ctx, req)
}

func (c *WardrobeServiceClient) SaveProfile(ctx context.Context, req *connect.Request[SaveProfileRequest]) (*connect.Response[SaveProfileResponse], error) {
	return c.saveProfile.CallUnary(ctx, req)
}

func (c *WardrobeServiceClient) GetSettings(ctx context.Context, req *connect.Request[GetSettingsRequest]) (*connect.Response[GetSettingsResponse], error) {
	return c.getSettings.CallUnary(ctx, req)
}

func (c *WardrobeServiceClient) SaveSettings(ctx context.Context, req *connect.Request[SaveSettingsRequest]) (*connect.Response[SaveSettingsResponse], error) {
	return c.saveSettings.CallUnary(ctx, req)
}

func (c *WardrobeServiceClient) CheckOutgrown(ctx context.Context, req *connect.Request[CheckOutgrownRequest]) (*connect.Response[CheckOutgrownResponse], error) {
	return c.checkOutgrown.CallUnary(ctx, req)
}

func (c *WardrobeServiceClient) SuggestOutfit(ctx context.Context, req *connect.Request[SuggestOutfitRequest]) (*connect.Response[SuggestOutfitResponse], error) {
	return c.suggestOutfit.CallUnary(ctx, req)
}

func (c *WardrobeServiceClient) GetDashboard(ctx context.Context, req *connect.Request[GetDashboardRequest]) (*connect.Response[GetDashboardResponse], error) {
	return c.getDashboard.CallUnary(ctx, req)
}

func (c *WardrobeServiceClient) AnalyzeImage(ctx context.Context, req *connect.Request[AnalyzeImageRequest]) (*connect.Response[AnalyzeImageResponse], error) {
	return c.analyzeImage.CallUnary(ctx, req)
}
